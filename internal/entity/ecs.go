// internal/entity/ecs.go
package entity

import (
	"pixel-war/internal/component"
	"pixel-war/internal/types"
)

// ECS хранит компоненты по ID и упорядоченный состав групп.
type ECS struct {
	NextID      types.EntityID
	Kinds       map[types.EntityID]component.Kind
	Positions   map[types.EntityID]*component.Position
	Hitboxes    map[types.EntityID]*component.Hitbox
	Velocities  map[types.EntityID]*component.Velocity
	Patrols     map[types.EntityID]*component.Patrol
	Waves       map[types.EntityID]*component.Wave
	Healths     map[types.EntityID]*component.Health
	Lifetimes   map[types.EntityID]*component.Lifetime
	BossAttacks map[types.EntityID]*component.BossAttack
	Pilots      map[types.EntityID]*component.Pilot
	Renderables map[types.EntityID]*component.Renderable

	groups  [component.GroupCount][]types.EntityID
	groupOf map[types.EntityID]component.Group
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Kinds:       make(map[types.EntityID]component.Kind),
		Positions:   make(map[types.EntityID]*component.Position),
		Hitboxes:    make(map[types.EntityID]*component.Hitbox),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Patrols:     make(map[types.EntityID]*component.Patrol),
		Waves:       make(map[types.EntityID]*component.Wave),
		Healths:     make(map[types.EntityID]*component.Health),
		Lifetimes:   make(map[types.EntityID]*component.Lifetime),
		BossAttacks: make(map[types.EntityID]*component.BossAttack),
		Pilots:      make(map[types.EntityID]*component.Pilot),
		Renderables: make(map[types.EntityID]*component.Renderable),
		groupOf:     make(map[types.EntityID]component.Group),
	}
}

// NewEntity создаёт сущность вида kind в группе g с позицией и размером.
func (ecs *ECS) NewEntity(g component.Group, kind component.Kind, x, y, w, h float64) types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.Kinds[id] = kind
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Hitboxes[id] = &component.Hitbox{W: w, H: h}
	ecs.groups[g] = append(ecs.groups[g], id)
	ecs.groupOf[id] = g
	return id
}

// Remove удаляет сущность из всех компонентов и её группы. Повторный вызов безопасен.
func (ecs *ECS) Remove(id types.EntityID) {
	g, ok := ecs.groupOf[id]
	if !ok {
		return
	}
	members := ecs.groups[g]
	for i, m := range members {
		if m == id {
			ecs.groups[g] = append(members[:i:i], members[i+1:]...)
			break
		}
	}
	delete(ecs.groupOf, id)
	delete(ecs.Kinds, id)
	delete(ecs.Positions, id)
	delete(ecs.Hitboxes, id)
	delete(ecs.Velocities, id)
	delete(ecs.Patrols, id)
	delete(ecs.Waves, id)
	delete(ecs.Healths, id)
	delete(ecs.Lifetimes, id)
	delete(ecs.BossAttacks, id)
	delete(ecs.Pilots, id)
	delete(ecs.Renderables, id)
}

// Alive сообщает, существует ли сущность.
func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.groupOf[id]
	return ok
}

// Group возвращает копию состава группы в порядке создания;
// удаление во время обхода копии безопасно.
func (ecs *ECS) Group(g component.Group) []types.EntityID {
	members := ecs.groups[g]
	out := make([]types.EntityID, len(members))
	copy(out, members)
	return out
}

// Count — размер группы.
func (ecs *ECS) Count(g component.Group) int {
	return len(ecs.groups[g])
}

// CountKind — число живых сущностей вида kind в группе g.
func (ecs *ECS) CountKind(g component.Group, kind component.Kind) int {
	n := 0
	for _, id := range ecs.groups[g] {
		if ecs.Kinds[id] == kind {
			n++
		}
	}
	return n
}

// Clear удаляет все сущности группы.
func (ecs *ECS) Clear(g component.Group) {
	for _, id := range ecs.Group(g) {
		ecs.Remove(id)
	}
}

// Rect возвращает прямоугольник сущности (левый, верхний, правый, нижний).
func (ecs *ECS) Rect(id types.EntityID) (left, top, right, bottom float64, ok bool) {
	pos, hasPos := ecs.Positions[id]
	box, hasBox := ecs.Hitboxes[id]
	if !hasPos || !hasBox {
		return 0, 0, 0, 0, false
	}
	return pos.X - box.W/2, pos.Y - box.H/2, pos.X + box.W/2, pos.Y + box.H/2, true
}
