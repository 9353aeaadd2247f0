package report

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"rosterstats/internal/stats"
	"rosterstats/internal/tabulate"
)

// Table is a sheet payload: ordered rows of cells. An empty row is a blank
// separator line.
type Table [][]any

const unitsColumn = "Units"

// StatsTable lays out a snapshot as the summary sheet.
func StatsTable(s *stats.Snapshot) Table {
	table := Table{
		{"Statistic", "Value"},
		{"Total units", s.TotalUnits},
		{"Average unit level", s.AverageLevel},
		{"Average unit gear", s.AverageGear},
		{},
		{"Rarity (stars)", unitsColumn},
	}
	table = append(table, bucketRows(s.RarityDistribution)...)
	table = append(table, []any{}, []any{"Gear (equipment tier)", unitsColumn})
	table = append(table, bucketRows(s.GearDistribution)...)
	table = append(table, []any{}, []any{"Most frequent units", unitsColumn})
	for _, f := range s.TopUnits {
		table = append(table, []any{f.Key, f.Count})
	}
	return table
}

// RosterTable lays out tabulated rows under the characters header.
func RosterTable(rows []tabulate.Row) Table {
	table := make(Table, 0, len(rows)+1)
	table = append(table, lo.Map(tabulate.Header, func(h string, _ int) any { return h }))
	for _, row := range rows {
		table = append(table, row.Cells())
	}
	return table
}

func bucketRows(buckets []stats.Bucket) Table {
	return lo.Map(buckets, func(b stats.Bucket, _ int) []any {
		return []any{strconv.Itoa(b.Key), b.Count}
	})
}

// Width is the number of cells in the widest row.
func (t Table) Width() int {
	width := 0
	for _, row := range t {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Range returns the A1 notation range covering the table, e.g. "A1:J11".
func (t Table) Range() string {
	if len(t) == 0 || t.Width() == 0 {
		return "A1"
	}
	return fmt.Sprintf("A1:%s%d", ColumnName(t.Width()), len(t))
}

// ColumnName converts a 1-based column index to its letter name (1 → A, 27 → AA).
func ColumnName(index int) string {
	name := ""
	for index > 0 {
		index--
		name = string(rune('A'+index%26)) + name
		index /= 26
	}
	return name
}
