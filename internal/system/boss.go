// internal/system/boss.go
package system

import (
	"pixel-war/internal/component"
	"pixel-war/internal/entity"
)

// BossSystem ведёт счётчики атак боссов.
type BossSystem struct {
	ecs   *entity.ECS
	spawn *SpawnSystem
}

func NewBossSystem(ecs *entity.ECS, spawn *SpawnSystem) *BossSystem {
	return &BossSystem{ecs: ecs, spawn: spawn}
}

// Update увеличивает счётчик каждого босса; по достижении интервала босс стреляет.
func (s *BossSystem) Update() int {
	shots := 0
	for _, id := range s.ecs.Group(component.GroupEnemies) {
		attack, ok := s.ecs.BossAttacks[id]
		if !ok {
			continue
		}
		attack.Counter++
		if attack.Counter >= attack.Interval {
			pos := s.ecs.Positions[id]
			s.spawn.SpawnBossProjectile(pos.X, pos.Y)
			attack.Counter = 0
			shots++
		}
	}
	return shots
}

// HasBoss сообщает, есть ли на поле босс.
func (s *BossSystem) HasBoss() bool {
	return s.ecs.CountKind(component.GroupEnemies, component.KindBoss) > 0
}
