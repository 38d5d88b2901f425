package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemyKilled, r)
	d.Subscribe(BossKilled, r)

	d.Emit(EnemyKilled, EnemyData{})
	d.Emit(LevelUp, LevelData{Level: 2})
	d.Emit(BossKilled, nil)

	assert.Equal(t, []EventType{EnemyKilled, BossKilled}, r.got)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(PlayerHit, r)
	d.Unsubscribe(PlayerHit, r)
	d.Emit(PlayerHit, PlayerHitData{LivesLeft: 2})
	assert.Empty(t, r.got)
}

func TestSubscribeAllAndFunc(t *testing.T) {
	d := NewDispatcher()
	count := 0
	d.SubscribeAll(ListenerFunc(func(Event) { count++ }))
	for _, typ := range AllTypes {
		d.Emit(typ, nil)
	}
	assert.Equal(t, len(AllTypes), count)
}
