package stats

import (
	"sort"
	"strconv"

	"rosterstats/internal/roster"
)

// TopUnitsLimit caps the number of entries in Snapshot.TopUnits.
const TopUnitsLimit = 10

// Bucket is one key of a distribution.
type Bucket struct {
	Key   int `json:"key"`
	Count int `json:"count"`
}

type Snapshot struct {
	TotalUnits         int         `json:"total_units"`
	RarityDistribution []Bucket    `json:"rarity_distribution"`
	GearDistribution   []Bucket    `json:"gear_distribution"`
	AverageLevel       float64     `json:"average_level"`
	AverageGear        float64     `json:"average_gear"`
	TopUnits           []Frequency `json:"top_units"`
}

// Aggregate computes the statistics snapshot of a roster in a single pass.
func Aggregate(units roster.Roster) *Snapshot {
	rarity := make(map[int]int)
	gear := make(map[int]int)
	names := NewCounter()
	var levelSum, gearSum int

	for _, u := range units {
		rarity[u.Rarity]++
		gear[u.GearTier]++
		levelSum += u.Level
		gearSum += u.GearTier
		names.Add(u.DefinitionKey())
	}

	total := len(units)
	return &Snapshot{
		TotalUnits:         total,
		RarityDistribution: sortedBuckets(rarity),
		GearDistribution:   sortedBuckets(gear),
		AverageLevel:       average(levelSum, total),
		AverageGear:        average(gearSum, total),
		TopUnits:           names.MostCommon(TopUnitsLimit),
	}
}

func (s *Snapshot) RarityMap() map[int]int {
	return bucketMap(s.RarityDistribution)
}

func (s *Snapshot) GearMap() map[int]int {
	return bucketMap(s.GearDistribution)
}

func sortedBuckets(counts map[int]int) []Bucket {
	buckets := make([]Bucket, 0, len(counts))
	for key, count := range counts {
		buckets = append(buckets, Bucket{Key: key, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key < buckets[j].Key
	})
	return buckets
}

func bucketMap(buckets []Bucket) map[int]int {
	out := make(map[int]int, len(buckets))
	for _, b := range buckets {
		out[b.Key] = b.Count
	}
	return out
}

func average(sum, total int) float64 {
	if total == 0 {
		return 0
	}
	return RoundFloat64(float64(sum)/float64(total), 2)
}

// RoundFloat64 rounds f to n decimal places. Rounding is done on the exact
// binary value, and an exact tie goes to the even digit (82.125 -> 82.12).
func RoundFloat64(f float64, n int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', n, 64), 64)
	if err != nil {
		return f
	}
	return rounded
}
