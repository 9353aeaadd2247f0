package roster

import "strings"

// UnknownDefinition stands in for a unit whose definitionId is missing.
const UnknownDefinition = "UNKNOWN"

// nameDelimiter separates the display name from the variant in a definitionId.
const nameDelimiter = ":"

// Player is the normalized player document.
type Player struct {
	AllyCode string
	Name     string
	Level    int
	Units    Roster
}

// Roster is a player's units in document order.
type Roster []Unit

// Unit is one roster entry. Fields absent from the source document keep their
// zero value; Relic is nil when the unit has no relic component.
// HasDefinitionID tells an absent definitionId from an empty one.
type Unit struct {
	ID              string
	DefinitionID    string
	HasDefinitionID bool
	Rarity          int
	Level           int
	XP              int
	GearTier        int
	Relic           *Relic
	Skills          []Skill
	Equipment       []Equipment
}

type Relic struct {
	CurrentTier int
}

type Skill struct {
	ID      string
	Tier    int
	HasTier bool
}

type Equipment struct {
	EquipmentID string
	Slot        int
	HasSlot     bool
}

// Name returns the part of the definitionId before the first delimiter, or the
// whole id when there is none.
func (u Unit) Name() string {
	name, _, _ := strings.Cut(u.DefinitionID, nameDelimiter)
	return name
}

func (u Unit) RelicTier() int {
	if u.Relic == nil {
		return 0
	}
	return u.Relic.CurrentTier
}

// DefinitionKey is the definitionId used for frequency counting. Only a unit
// without any definitionId counts as UnknownDefinition; an empty id is its own key.
func (u Unit) DefinitionKey() string {
	if !u.HasDefinitionID && u.DefinitionID == "" {
		return UnknownDefinition
	}
	return u.DefinitionID
}
