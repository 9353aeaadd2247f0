package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterstats/internal/roster"
)

func TestAggregate_Example(t *testing.T) {
	units := roster.Roster{
		{Rarity: 7, GearTier: 12, Level: 85},
		{Rarity: 7, GearTier: 11, Level: 80},
	}

	snap := Aggregate(units)

	assert.Equal(t, 2, snap.TotalUnits)
	assert.Equal(t, []Bucket{{Key: 7, Count: 2}}, snap.RarityDistribution)
	assert.Equal(t, []Bucket{{Key: 11, Count: 1}, {Key: 12, Count: 1}}, snap.GearDistribution)
	assert.Equal(t, 82.5, snap.AverageLevel)
	assert.Equal(t, 11.5, snap.AverageGear)
	assert.Equal(t, map[int]int{7: 2}, snap.RarityMap())
	assert.Equal(t, map[int]int{11: 1, 12: 1}, snap.GearMap())
}

func TestAggregate_Empty(t *testing.T) {
	for name, units := range map[string]roster.Roster{"nil": nil, "empty": {}} {
		t.Run(name, func(t *testing.T) {
			snap := Aggregate(units)
			assert.Equal(t, 0, snap.TotalUnits)
			assert.Equal(t, 0.0, snap.AverageLevel)
			assert.Equal(t, 0.0, snap.AverageGear)
			assert.Empty(t, snap.RarityDistribution)
			assert.Empty(t, snap.GearDistribution)
			assert.Empty(t, snap.TopUnits)
		})
	}
}

func TestAggregate_Rounding(t *testing.T) {
	units := roster.Roster{{Level: 85, GearTier: 13}, {Level: 85, GearTier: 12}, {Level: 84, GearTier: 12}}

	snap := Aggregate(units)

	assert.Equal(t, 84.67, snap.AverageLevel)
	assert.Equal(t, 12.33, snap.AverageGear)

	t.Run("exact half goes to even", func(t *testing.T) {
		units := make(roster.Roster, 0, 8)
		for i := 0; i < 7; i++ {
			units = append(units, roster.Unit{Level: 82})
		}
		units = append(units, roster.Unit{Level: 83, GearTier: 9})

		snap := Aggregate(units)

		assert.Equal(t, 82.12, snap.AverageLevel)
		assert.Equal(t, 1.12, snap.AverageGear)
	})
}

func TestAggregate_DistributionsSorted(t *testing.T) {
	units := roster.Roster{
		{Rarity: 7, GearTier: 13},
		{Rarity: 1, GearTier: 1},
		{Rarity: 4, GearTier: 8},
		{Rarity: 7, GearTier: 13},
		{Rarity: 2, GearTier: 3},
	}

	snap := Aggregate(units)

	for _, dist := range [][]Bucket{snap.RarityDistribution, snap.GearDistribution} {
		for i := 1; i < len(dist); i++ {
			assert.Less(t, dist[i-1].Key, dist[i].Key)
		}
	}
	assert.Equal(t, []Bucket{{1, 1}, {2, 1}, {4, 1}, {7, 2}}, snap.RarityDistribution)
}

func TestAggregate_TotalMatchesLength(t *testing.T) {
	for n := 0; n < 25; n += 6 {
		units := make(roster.Roster, n)
		assert.Equal(t, n, Aggregate(units).TotalUnits)
	}
}

func TestAggregate_TopUnits(t *testing.T) {
	t.Run("missing definition counted as unknown", func(t *testing.T) {
		snap := Aggregate(roster.Roster{{}, {DefinitionID: "GRIEVOUS"}, {}})
		assert.Equal(t, []Frequency{{Key: roster.UnknownDefinition, Count: 2}, {Key: "GRIEVOUS", Count: 1}}, snap.TopUnits)
	})

	t.Run("empty definition is not unknown", func(t *testing.T) {
		snap := Aggregate(roster.Roster{{HasDefinitionID: true}, {}})
		assert.Equal(t, []Frequency{{Key: "", Count: 1}, {Key: roster.UnknownDefinition, Count: 1}}, snap.TopUnits)
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		units := roster.Roster{
			{DefinitionID: "C"},
			{DefinitionID: "A"},
			{DefinitionID: "B"},
			{DefinitionID: "A"},
			{DefinitionID: "B"},
		}
		snap := Aggregate(units)
		assert.Equal(t, []Frequency{{"A", 2}, {"B", 2}, {"C", 1}}, snap.TopUnits)
	})

	t.Run("capped at limit", func(t *testing.T) {
		var units roster.Roster
		for i := 0; i < 15; i++ {
			for j := 0; j <= i%3; j++ {
				units = append(units, roster.Unit{DefinitionID: fmt.Sprintf("UNIT_%02d", i)})
			}
		}

		snap := Aggregate(units)

		require.Len(t, snap.TopUnits, TopUnitsLimit)
		for i := 1; i < len(snap.TopUnits); i++ {
			assert.GreaterOrEqual(t, snap.TopUnits[i-1].Count, snap.TopUnits[i].Count)
		}
		assert.Equal(t, "UNIT_02", snap.TopUnits[0].Key)
		assert.Equal(t, "UNIT_05", snap.TopUnits[1].Key)
	})

	t.Run("fewer distinct ids than limit", func(t *testing.T) {
		snap := Aggregate(roster.Roster{{DefinitionID: "A"}, {DefinitionID: "A"}})
		assert.Equal(t, []Frequency{{"A", 2}}, snap.TopUnits)
	})
}

func TestAggregate_Idempotent(t *testing.T) {
	units := roster.Roster{
		{DefinitionID: "A", Rarity: 3, GearTier: 4, Level: 50},
		{DefinitionID: "B", Rarity: 7, GearTier: 13, Level: 85},
	}
	assert.Equal(t, Aggregate(units), Aggregate(units))
}

func TestCounter(t *testing.T) {
	c := NewCounter()
	for _, key := range []string{"x", "y", "x", "z"} {
		c.Add(key)
	}

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 2, c.Count("x"))
	assert.Equal(t, 0, c.Count("missing"))
	assert.Equal(t, []Frequency{{"x", 2}, {"y", 1}, {"z", 1}}, c.MostCommon(-1))
	assert.Equal(t, []Frequency{{"x", 2}}, c.MostCommon(1))
	assert.Empty(t, c.MostCommon(0))
}

func TestRoundFloat64(t *testing.T) {
	assert.Equal(t, 1.23, RoundFloat64(1.234, 2))
	assert.Equal(t, 1.24, RoundFloat64(1.2351, 2))
	assert.Equal(t, 2.0, RoundFloat64(2, 2))
	assert.Equal(t, 82.12, RoundFloat64(82.125, 2))
	assert.Equal(t, 0.38, RoundFloat64(0.375, 2))
	assert.Equal(t, 2.67, RoundFloat64(2.675, 2))
	assert.Equal(t, -1.12, RoundFloat64(-1.125, 2))
}
