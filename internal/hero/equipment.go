// internal/hero/equipment.go
package hero

import (
	"fmt"
	"sort"
	"strings"

	"pixel-war/internal/defs"
)

// Slot — ячейка экипировки.
type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

// Equipment — предмет с бонусами к навыкам.
type Equipment struct {
	Name    string
	Slot    Slot
	Bonuses map[string]int
}

func NewWeapon(name string, bonuses map[string]int) Equipment {
	return Equipment{Name: name, Slot: SlotWeapon, Bonuses: bonuses}
}

func NewArmor(name string, bonuses map[string]int) Equipment {
	return Equipment{Name: name, Slot: SlotArmor, Bonuses: bonuses}
}

func NewAccessory(name string, bonuses map[string]int) Equipment {
	return Equipment{Name: name, Slot: SlotAccessory, Bonuses: bonuses}
}

// EquipmentFromDef строит предмет из данных награды. Неизвестный слот — аксессуар.
func EquipmentFromDef(def defs.EquipmentDefinition) Equipment {
	switch Slot(def.Slot) {
	case SlotWeapon:
		return NewWeapon(def.Name, def.Bonuses)
	case SlotArmor:
		return NewArmor(def.Name, def.Bonuses)
	default:
		return NewAccessory(def.Name, def.Bonuses)
	}
}

func (e Equipment) String() string {
	if len(e.Bonuses) == 0 {
		return fmt.Sprintf("%s (%s)", e.Name, e.Slot)
	}
	keys := make([]string, 0, len(e.Bonuses))
	for k := range e.Bonuses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %+d", k, e.Bonuses[k]))
	}
	return fmt.Sprintf("%s (%s): %s", e.Name, e.Slot, strings.Join(parts, ", "))
}
