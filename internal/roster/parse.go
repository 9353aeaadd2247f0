package roster

import (
	"errors"
	"os"

	"github.com/tidwall/gjson"
)

var ErrInvalidDocument = errors.New("player document is not valid JSON")

// Transport keys used by the player endpoint.
const (
	keyUnits        = "rosterUnit"
	keyID           = "id"
	keyDefinitionID = "definitionId"
	keyRarity       = "currentRarity"
	keyLevel        = "currentLevel"
	keyXP           = "currentXp"
	keyGearTier     = "currentTier"
	keyRelic        = "relic"
	keyRelicTier    = "currentTier"
	keySkills       = "skill"
	keySkillID      = "id"
	keySkillTier    = "tier"
	keyEquipment    = "equipment"
	keyEquipmentID  = "equipmentId"
	keySlot         = "slot"
)

func ParseFile(path string) (*Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse normalizes a raw player document. Missing attributes resolve to their
// zero value; only a document that is not JSON at all is rejected.
func Parse(doc []byte) (*Player, error) {
	if !gjson.ValidBytes(doc) {
		return nil, ErrInvalidDocument
	}

	root := gjson.ParseBytes(doc)
	player := &Player{
		AllyCode: root.Get("allyCode").String(),
		Name:     root.Get("name").String(),
		Level:    int(root.Get("level").Int()),
	}

	units := root.Get(keyUnits)
	if !units.IsArray() {
		player.Units = Roster{}
		return player, nil
	}

	items := units.Array()
	player.Units = make(Roster, 0, len(items))
	for _, item := range items {
		player.Units = append(player.Units, parseUnit(item))
	}
	return player, nil
}

func parseUnit(item gjson.Result) Unit {
	definitionID := item.Get(keyDefinitionID)
	unit := Unit{
		ID:              item.Get(keyID).String(),
		DefinitionID:    definitionID.String(),
		HasDefinitionID: definitionID.Exists(),
		Rarity:          int(item.Get(keyRarity).Int()),
		Level:           int(item.Get(keyLevel).Int()),
		XP:              int(item.Get(keyXP).Int()),
		GearTier:        int(item.Get(keyGearTier).Int()),
	}

	if relic := item.Get(keyRelic); relic.IsObject() {
		unit.Relic = &Relic{CurrentTier: int(relic.Get(keyRelicTier).Int())}
	}

	for _, s := range listOf(item.Get(keySkills)) {
		tier := s.Get(keySkillTier)
		unit.Skills = append(unit.Skills, Skill{
			ID:      s.Get(keySkillID).String(),
			Tier:    int(tier.Int()),
			HasTier: tier.Exists() && tier.Type != gjson.Null,
		})
	}

	for _, e := range listOf(item.Get(keyEquipment)) {
		slot := e.Get(keySlot)
		unit.Equipment = append(unit.Equipment, Equipment{
			EquipmentID: e.Get(keyEquipmentID).String(),
			Slot:        int(slot.Int()),
			HasSlot:     slot.Exists() && slot.Type != gjson.Null,
		})
	}

	return unit
}

// listOf returns the elements of an array value. gjson wraps scalars in a
// single-element slice, which would turn a malformed field into a bogus entry.
func listOf(value gjson.Result) []gjson.Result {
	if !value.IsArray() {
		return nil
	}
	return value.Array()
}
