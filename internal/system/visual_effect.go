// internal/system/visual_effect.go
package system

import (
	"pixel-war/internal/component"
	"pixel-war/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами (взрывами).
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update продвигает кадры взрывов и удаляет отыгравшие.
func (s *VisualEffectSystem) Update() {
	for _, id := range s.ecs.Group(component.GroupExplosions) {
		life, ok := s.ecs.Lifetimes[id]
		if !ok {
			continue
		}
		life.Frame++
		if life.Frame >= life.MaxFrames {
			s.ecs.Remove(id)
		}
	}
}
