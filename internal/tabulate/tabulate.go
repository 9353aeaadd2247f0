package tabulate

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"rosterstats/internal/roster"
)

const listSeparator = ", "

// Header is the column layout of the characters sheet.
var Header = []string{
	"ID", "DefinitionId", "Name", "Stars", "Level", "XP", "Gear Level",
	"Relic Tier", "Skills", "Equipment Slots",
}

// Row is a flattened unit.
type Row struct {
	ID           string `json:"id"`
	DefinitionID string `json:"definitionId"`
	Name         string `json:"name"`
	Stars        int    `json:"stars"`
	Level        int    `json:"level"`
	XP           int    `json:"xp"`
	GearLevel    int    `json:"gearLevel"`
	RelicTier    int    `json:"relicTier"`
	Skills       string `json:"skills"`
	Equipment    string `json:"equipment"`
}

// Tabulate flattens every unit of the roster, keeping roster order.
func Tabulate(units roster.Roster) []Row {
	return lo.Map(units, func(u roster.Unit, _ int) Row {
		return FromUnit(u)
	})
}

func FromUnit(u roster.Unit) Row {
	return Row{
		ID:           u.ID,
		DefinitionID: u.DefinitionID,
		Name:         u.Name(),
		Stars:        u.Rarity,
		Level:        u.Level,
		XP:           u.XP,
		GearLevel:    u.GearTier,
		RelicTier:    u.RelicTier(),
		Skills:       EncodeSkills(u.Skills),
		Equipment:    EncodeEquipment(u.Equipment),
	}
}

// Cells returns the row values in Header order.
func (r Row) Cells() []any {
	return []any{
		r.ID, r.DefinitionID, r.Name, r.Stars, r.Level, r.XP, r.GearLevel,
		r.RelicTier, r.Skills, r.Equipment,
	}
}

// EncodeSkills renders skills as "id(tier)" joined by ", ".
func EncodeSkills(skills []roster.Skill) string {
	return strings.Join(lo.Map(skills, func(s roster.Skill, _ int) string {
		return fmt.Sprintf("%s(%s)", s.ID, optionalInt(s.Tier, s.HasTier))
	}), listSeparator)
}

// EncodeEquipment renders equipment as "equipmentId[slot]" joined by ", ".
func EncodeEquipment(equipment []roster.Equipment) string {
	return strings.Join(lo.Map(equipment, func(e roster.Equipment, _ int) string {
		return fmt.Sprintf("%s[%s]", e.EquipmentID, optionalInt(e.Slot, e.HasSlot))
	}), listSeparator)
}

func optionalInt(v int, ok bool) string {
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}
