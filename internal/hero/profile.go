// internal/hero/profile.go
package hero

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNoSkillPoints = errors.New("not enough skill points")
	ErrSkillMaxed    = errors.New("skill already at max level")
	ErrUnknownSkill  = errors.New("unknown skill")
)

// skillOrder — порядок навыков в интерфейсе.
var skillOrder = []string{"strength", "intelligence", "agility", "engineering", "creativity"}

// ClassSkills — базовые навыки классов.
var ClassSkills = map[string]map[string]int{
	"Warrior":  {"strength": 8, "intelligence": 3, "agility": 5},
	"Mage":     {"strength": 3, "intelligence": 9, "agility": 4},
	"Rogue":    {"strength": 5, "intelligence": 4, "agility": 8},
	"Engineer": {"strength": 4, "intelligence": 7, "engineering": 8},
	"Artist":   {"intelligence": 6, "agility": 4, "creativity": 9},
}

// Profile — прогресс героя между игровыми сессиями.
type Profile struct {
	Class       string
	Skills      map[string]int
	SkillPoints int
	Experience  int
	Reputation  map[string]int
	Inventory   []Equipment
	Tree        *SkillTree
}

// NewProfile создаёт героя класса class; неизвестный класс — Warrior.
func NewProfile(class string) *Profile {
	base, ok := ClassSkills[class]
	if !ok {
		class, base = "Warrior", ClassSkills["Warrior"]
	}
	skills := make(map[string]int, len(base))
	var names []string
	for _, name := range skillOrder {
		if v, ok := base[name]; ok {
			skills[name] = v
			names = append(names, name)
		}
	}
	return &Profile{
		Class:       class,
		Skills:      skills,
		SkillPoints: 1,
		Reputation:  make(map[string]int),
		Tree:        NewSkillTree(names),
	}
}

// UpgradeSkill тратит очки навыков на узел дерева и поднимает навык на 1.
func (p *Profile) UpgradeSkill(name string) error {
	node := p.Tree.Node(name)
	if node == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSkill, name)
	}
	if node.Maxed() {
		return ErrSkillMaxed
	}
	if p.SkillPoints < node.Cost {
		return ErrNoSkillPoints
	}
	p.SkillPoints -= node.Cost
	node.Level++
	p.Skills[name]++
	return nil
}

// classGreetings — реплика старейшины для каждого класса.
var classGreetings = map[string]string{
	"Warrior":  "Ah, a battle-hardened warrior! Your scars speak of honor.",
	"Mage":     "I sense a swirling aura of magic about you, a true prodigy.",
	"Rogue":    "The shadows embrace you, nimble one. Use them wisely.",
	"Engineer": "Your innovative mind heralds a new era of progress.",
	"Artist":   "Your creative spirit brightens even the darkest times.",
}

// ClassGreeting — обращение NPC к герою класса class.
func ClassGreeting(class string) string {
	if line, ok := classGreetings[class]; ok {
		return line
	}
	return "Every hero has their own story."
}

// AddItem кладёт предмет в инвентарь.
func (p *Profile) AddItem(e Equipment) {
	p.Inventory = append(p.Inventory, e)
}

// AddReputation меняет репутацию у фракции.
func (p *Profile) AddReputation(faction string, delta int) {
	p.Reputation[faction] += delta
}

// InventoryText — содержимое инвентаря для журнала.
func (p *Profile) InventoryText() string {
	if len(p.Inventory) == 0 {
		return "Inventory is empty."
	}
	lines := make([]string, 0, len(p.Inventory))
	for _, e := range p.Inventory {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, "\n")
}

// Summary — класс, опыт и репутация одной строкой на пункт.
func (p *Profile) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Class: %s\nExperience: %d\nSkill points: %d", p.Class, p.Experience, p.SkillPoints)
	factions := make([]string, 0, len(p.Reputation))
	for f := range p.Reputation {
		factions = append(factions, f)
	}
	sort.Strings(factions)
	for _, f := range factions {
		fmt.Fprintf(&b, "\nReputation %s: %d", f, p.Reputation[f])
	}
	return b.String()
}
