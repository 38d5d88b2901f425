// internal/quest/reward.go
package quest

import (
	"fmt"
	"strconv"
	"strings"

	"pixel-war/internal/defs"
	"pixel-war/internal/hero"

	"github.com/vcrini/diceroll"
)

// RollExperience вычисляет опыт: целое число или выражение кубиков ("2d6+5").
func RollExperience(expr string) (int, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, nil
	}
	if v, err := strconv.Atoi(expr); err == nil {
		return v, nil
	}
	total, _, err := diceroll.RollExpression(expr)
	if err != nil {
		return 0, fmt.Errorf("failed to roll experience %q: %w", expr, err)
	}
	return total, nil
}

// Apply начисляет награду герою.
func Apply(r defs.RewardDefinition, p *hero.Profile) error {
	xp, err := RollExperience(r.Experience)
	p.Experience += xp
	p.SkillPoints += r.SkillPoints
	for faction, delta := range r.Reputation {
		p.AddReputation(faction, delta)
	}
	if r.Item != nil {
		p.AddItem(hero.EquipmentFromDef(*r.Item))
	}
	return err
}
