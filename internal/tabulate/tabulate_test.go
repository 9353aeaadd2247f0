package tabulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterstats/internal/roster"
)

func TestTabulate(t *testing.T) {
	units := roster.Roster{
		{
			ID:           "u1",
			DefinitionID: "JEDICONSULAR:SEVEN",
			Rarity:       7,
			Level:        85,
			XP:           1000,
			GearTier:     12,
			Relic:        &roster.Relic{CurrentTier: 5},
			Skills:       []roster.Skill{{ID: "A", Tier: 3, HasTier: true}, {ID: "B", Tier: 1, HasTier: true}},
			Equipment:    []roster.Equipment{{EquipmentID: "172", Slot: 0, HasSlot: true}, {EquipmentID: "173", Slot: 4, HasSlot: true}},
		},
		{ID: "u2", DefinitionID: "GRIEVOUS", Rarity: 6},
	}

	rows := Tabulate(units)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{
		ID:           "u1",
		DefinitionID: "JEDICONSULAR:SEVEN",
		Name:         "JEDICONSULAR",
		Stars:        7,
		Level:        85,
		XP:           1000,
		GearLevel:    12,
		RelicTier:    5,
		Skills:       "A(3), B(1)",
		Equipment:    "172[0], 173[4]",
	}, rows[0])

	assert.Equal(t, Row{ID: "u2", DefinitionID: "GRIEVOUS", Name: "GRIEVOUS", Stars: 6}, rows[1])
	assert.Equal(t, Tabulate(units), rows)
}

func TestTabulate_Empty(t *testing.T) {
	assert.Empty(t, Tabulate(nil))
	assert.Empty(t, Tabulate(roster.Roster{}))
}

func TestTabulate_NoRelic(t *testing.T) {
	rows := Tabulate(roster.Roster{{ID: "u1"}})
	assert.Equal(t, 0, rows[0].RelicTier)
}

func TestEncodeSkills(t *testing.T) {
	tests := []struct {
		name     string
		skills   []roster.Skill
		expected string
	}{
		{name: "empty", skills: nil, expected: ""},
		{name: "single", skills: []roster.Skill{{ID: "A", Tier: 3, HasTier: true}}, expected: "A(3)"},
		{name: "ordered", skills: []roster.Skill{{ID: "A", Tier: 3, HasTier: true}, {ID: "B", Tier: 1, HasTier: true}}, expected: "A(3), B(1)"},
		{name: "missing tier", skills: []roster.Skill{{ID: "A"}}, expected: "A()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeSkills(tt.skills))
		})
	}
}

func TestEncodeEquipment(t *testing.T) {
	tests := []struct {
		name      string
		equipment []roster.Equipment
		expected  string
	}{
		{name: "empty", equipment: []roster.Equipment{}, expected: ""},
		{name: "ordered", equipment: []roster.Equipment{{EquipmentID: "9", Slot: 5, HasSlot: true}, {EquipmentID: "1", Slot: 0, HasSlot: true}}, expected: "9[5], 1[0]"},
		{name: "missing slot", equipment: []roster.Equipment{{EquipmentID: "9"}}, expected: "9[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeEquipment(tt.equipment))
		})
	}
}

func TestRowCells(t *testing.T) {
	row := Row{ID: "u1", DefinitionID: "X:Y", Name: "X", Stars: 1, Level: 2, XP: 3, GearLevel: 4, RelicTier: 5, Skills: "s", Equipment: "e"}
	cells := row.Cells()
	require.Len(t, cells, len(Header))
	assert.Equal(t, []any{"u1", "X:Y", "X", 1, 2, 3, 4, 5, "s", "e"}, cells)
}
