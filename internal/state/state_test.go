package state

import (
	"testing"

	"pixel-war/internal/config"
	"pixel-war/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

// recorder — сцена, считающая вызовы жизненного цикла.
type recorder struct {
	base
	enters, exits, resumes, updates int
}

func (r *recorder) Enter()                       { r.enters++ }
func (r *recorder) Exit()                        { r.exits++ }
func (r *recorder) Resume()                      { r.resumes++ }
func (r *recorder) ProcessInput(in input.Reader) {}
func (r *recorder) Update(deltaTime float64)     { r.updates++ }
func (r *recorder) Draw(screen *ebiten.Image)    {}

func newTestContext(t *testing.T) *Context {
	t.Helper()
	s := config.DefaultSettings()
	s.Seed = 42
	s.DataDir = t.TempDir()
	return NewContext(s, t.TempDir())
}

func press(keys ...input.Key) input.Reader {
	return input.NewSnapshot().Press(keys...)
}

func TestNewStateMachineRejectsNil(t *testing.T) {
	assert.Panics(t, func() { NewStateMachine(nil) })
}

func TestCurrentPanicsOnEmptyStack(t *testing.T) {
	sm := &StateMachine{}
	assert.Panics(t, func() { sm.Current() })
}

func TestPopOnSingletonIsNoop(t *testing.T) {
	root := &recorder{}
	sm := NewStateMachine(root)
	sm.Pop()

	assert.Equal(t, 1, sm.Len())
	assert.Same(t, root, sm.Current())
	assert.Equal(t, 0, root.exits)
}

func TestPushNilIsIgnored(t *testing.T) {
	sm := NewStateMachine(&recorder{})
	sm.Push(nil)
	assert.Equal(t, 1, sm.Len())
}

func TestPushPopRestoresSameScene(t *testing.T) {
	root, overlay := &recorder{}, &recorder{}
	sm := NewStateMachine(root)
	sm.Push(overlay)

	require.Equal(t, 2, sm.Len())
	assert.Same(t, overlay, sm.Current())
	below, ok := sm.Below()
	require.True(t, ok)
	assert.Same(t, root, below)

	sm.Pop()
	assert.Same(t, root, sm.Current())
	assert.Equal(t, 1, overlay.enters)
	assert.Equal(t, 1, overlay.exits)
	assert.Equal(t, 1, root.resumes)
}

func TestReplaceExitsWholeStack(t *testing.T) {
	a, b, c := &recorder{}, &recorder{}, &recorder{}
	sm := NewStateMachine(a)
	sm.Push(b)
	sm.Replace(c)

	assert.Equal(t, 1, sm.Len())
	assert.Same(t, c, sm.Current())
	assert.Equal(t, 1, a.exits)
	assert.Equal(t, 1, b.exits)
	assert.Equal(t, 1, c.enters)
}

func TestUpdateReachesOnlyActiveScene(t *testing.T) {
	root, overlay := &recorder{}, &recorder{}
	sm := NewStateMachine(root)
	sm.Push(overlay)
	sm.Update(tick)

	assert.Equal(t, 0, root.updates)
	assert.Equal(t, 1, overlay.updates)
}

func TestFindSearchesFromTop(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	sm := NewStateMachine(a)
	sm.Push(b)

	found, ok := sm.Find(func(s State) bool { return s != b })
	require.True(t, ok)
	assert.Same(t, a, found)

	_, ok = sm.Find(func(State) bool { return false })
	assert.False(t, ok)
}

func TestFadeAlpha(t *testing.T) {
	var f Fade
	assert.False(t, f.Active())
	assert.Zero(t, f.Alpha())

	f.Start(500)
	f.Update(125)
	assert.InDelta(t, 0.5, f.Alpha(), 1e-9)
	f.Update(125)
	assert.InDelta(t, 1.0, f.Alpha(), 1e-9)
	f.Update(125)
	assert.InDelta(t, 0.5, f.Alpha(), 1e-9)
	f.Update(125)
	assert.False(t, f.Active())
}

func TestNameOf(t *testing.T) {
	assert.Equal(t, "Menu", nameOf(&MenuState{}))
	assert.Equal(t, "Game", nameOf(&GameState{}))
}

func TestContextHeroUsesSettingsClass(t *testing.T) {
	s := config.DefaultSettings()
	s.HeroClass = "Rogue"
	ctx := NewContext(s, t.TempDir())
	assert.Equal(t, "Rogue", ctx.Hero.Class)

	assert.Equal(t, "Warrior", NewContext(nil, t.TempDir()).Hero.Class)
}
