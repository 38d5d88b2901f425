// internal/system/collision.go
package system

import (
	"pixel-war/internal/component"
	"pixel-war/internal/entity"
	"pixel-war/internal/types"
	"pixel-war/internal/utils"
)

// Hit — пересекающаяся пара сущностей.
type Hit struct {
	A, B types.EntityID
}

// CollisionSystem отвечает только за геометрию; правила применяет игра.
type CollisionSystem struct {
	ecs *entity.ECS
}

func NewCollisionSystem(ecs *entity.ECS) *CollisionSystem {
	return &CollisionSystem{ecs: ecs}
}

// Intersects — строгое пересечение прямоугольников двух сущностей.
func (s *CollisionSystem) Intersects(a, b types.EntityID) bool {
	l1, t1, r1, b1, ok1 := s.ecs.Rect(a)
	l2, t2, r2, b2, ok2 := s.ecs.Rect(b)
	if !ok1 || !ok2 {
		return false
	}
	return utils.Overlaps(l1, t1, r1, b1, l2, t2, r2, b2)
}

// Pairs возвращает все пересекающиеся пары (a из ga, b из gb) в порядке групп.
func (s *CollisionSystem) Pairs(ga, gb component.Group) []Hit {
	var hits []Hit
	others := s.ecs.Group(gb)
	for _, a := range s.ecs.Group(ga) {
		for _, b := range others {
			if s.Intersects(a, b) {
				hits = append(hits, Hit{A: a, B: b})
			}
		}
	}
	return hits
}

// First — первая сущность группы g, пересекающая id.
func (s *CollisionSystem) First(id types.EntityID, g component.Group) (types.EntityID, bool) {
	for _, other := range s.ecs.Group(g) {
		if s.Intersects(id, other) {
			return other, true
		}
	}
	return 0, false
}

// Overlapping — все сущности группы g, пересекающие id.
func (s *CollisionSystem) Overlapping(id types.EntityID, g component.Group) []types.EntityID {
	var out []types.EntityID
	for _, other := range s.ecs.Group(g) {
		if s.Intersects(id, other) {
			out = append(out, other)
		}
	}
	return out
}
