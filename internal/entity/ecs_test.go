package entity

import (
	"testing"

	"pixel-war/internal/component"
	"pixel-war/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsKeepCreationOrder(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity(component.GroupEnemies, component.KindEnemyUnit, 0, 0, 10, 10)
	b := ecs.NewEntity(component.GroupEnemies, component.KindAnimatedEnemy, 0, 0, 10, 10)
	c := ecs.NewEntity(component.GroupEnemies, component.KindBoss, 0, 0, 10, 10)

	assert.Equal(t, []types.EntityID{a, b, c}, ecs.Group(component.GroupEnemies))

	ecs.Remove(b)
	assert.Equal(t, []types.EntityID{a, c}, ecs.Group(component.GroupEnemies))
	assert.False(t, ecs.Alive(b))
	assert.Equal(t, 1, ecs.CountKind(component.GroupEnemies, component.KindBoss))
}

func TestRemoveDuringIterationIsSafe(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 5; i++ {
		ecs.NewEntity(component.GroupProjectiles, component.KindProjectile, 0, 0, 1, 1)
	}
	seen := 0
	for _, id := range ecs.Group(component.GroupProjectiles) {
		ecs.Remove(id)
		seen++
	}
	assert.Equal(t, 5, seen)
	assert.Equal(t, 0, ecs.Count(component.GroupProjectiles))
}

func TestRemoveDropsAllComponents(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity(component.GroupEnemies, component.KindBoss, 10, 20, 80, 80)
	ecs.Healths[id] = &component.Health{Value: 5, Max: 5}
	ecs.BossAttacks[id] = &component.BossAttack{Interval: 180}

	ecs.Remove(id)
	ecs.Remove(id)

	assert.NotContains(t, ecs.Positions, id)
	assert.NotContains(t, ecs.Healths, id)
	assert.NotContains(t, ecs.BossAttacks, id)
	assert.NotContains(t, ecs.Kinds, id)
}

func TestRect(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity(component.GroupPlayer, component.KindPlayer, 100, 50, 40, 20)
	l, top, r, b, ok := ecs.Rect(id)
	require.True(t, ok)
	assert.Equal(t, []float64{80, 40, 120, 60}, []float64{l, top, r, b})

	_, _, _, _, ok = ecs.Rect(999)
	assert.False(t, ok)
}
