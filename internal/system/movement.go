// internal/system/movement.go
package system

import (
	"math"

	"pixel-war/internal/component"
	"pixel-war/internal/config"
	"pixel-war/internal/entity"
	"pixel-war/internal/types"
)

// MovementSystem продвигает все группы кроме игрока на один тик.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Update двигает группы в фиксированном порядке: враги, снаряды игрока,
// снаряды босса, бонусы. Взрывами занимается VisualEffectSystem,
// сооружения неподвижны, дроны идут последними через UpdateDrones.
func (s *MovementSystem) Update() {
	for _, id := range s.ecs.Group(component.GroupEnemies) {
		s.patrol(id)
	}
	for _, id := range s.ecs.Group(component.GroupProjectiles) {
		s.fly(id)
		if _, _, _, bottom, ok := s.ecs.Rect(id); ok && bottom < 0 {
			s.ecs.Remove(id)
		}
	}
	for _, g := range []component.Group{component.GroupBossProjectiles, component.GroupPowerUps} {
		for _, id := range s.ecs.Group(g) {
			s.fly(id)
			if _, top, _, _, ok := s.ecs.Rect(id); ok && top > config.ScreenHeight {
				s.ecs.Remove(id)
			}
		}
	}
}

// UpdateDrones двигает дронов по синусоиде с переносом через правый край.
func (s *MovementSystem) UpdateDrones() {
	for _, id := range s.ecs.Group(component.GroupDrones) {
		pos, wave := s.ecs.Positions[id], s.ecs.Waves[id]
		if pos == nil || wave == nil {
			continue
		}
		pos.X += wave.Speed
		wave.Counter++
		pos.Y = wave.BaseY + wave.Amplitude*math.Sin(wave.Frequency*float64(wave.Counter))
		if left, _, _, _, ok := s.ecs.Rect(id); ok && left > config.ScreenWidth {
			pos.X = -s.ecs.Hitboxes[id].W / 2
		}
	}
}

func (s *MovementSystem) patrol(id types.EntityID) {
	pos, p := s.ecs.Positions[id], s.ecs.Patrols[id]
	if pos == nil || p == nil {
		return
	}
	pos.X += p.Speed * p.Direction
	left, _, right, _, _ := s.ecs.Rect(id)
	if right >= config.ScreenWidth || left <= 0 {
		p.Direction = -p.Direction
	}
}

func (s *MovementSystem) fly(id types.EntityID) {
	pos, v := s.ecs.Positions[id], s.ecs.Velocities[id]
	if pos == nil || v == nil {
		return
	}
	pos.X += v.DX
	pos.Y += v.DY
}
