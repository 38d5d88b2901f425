// internal/state/state.go
package state

import (
	"pixel-war/internal/input"
	"pixel-war/internal/logging"
	"pixel-war/internal/transition"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// State — интерфейс для всех состояний (сцен)
type State interface {
	Enter()
	ProcessInput(in input.Reader)
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
	// Requests — очередь запросов сцены на смену состояния.
	Requests() *transition.Queue
}

// Resumer — сцена, которой нужно знать, что она снова наверху стека.
type Resumer interface {
	Resume()
}

// base — пустые Enter/Exit и очередь запросов для простых сцен.
type base struct {
	requests transition.Queue
}

func (b *base) Enter()                      {}
func (b *base) Exit()                       {}
func (b *base) Requests() *transition.Queue { return &b.requests }

// StateMachine — стек состояний; верхнее активно. Стек никогда не пуст.
type StateMachine struct {
	stack []State
	log   zerolog.Logger
}

// NewStateMachine создаёт машину с начальным состоянием.
func NewStateMachine(initial State) *StateMachine {
	if initial == nil {
		panic("initial state cannot be nil")
	}
	sm := &StateMachine{log: logging.For("state")}
	sm.Push(initial)
	return sm
}

// Push кладёт состояние на стек и делает его активным. nil игнорируется.
func (sm *StateMachine) Push(s State) {
	if s == nil {
		sm.log.Warn().Msg("push of nil state ignored")
		return
	}
	sm.stack = append(sm.stack, s)
	sm.log.Debug().Str("state", nameOf(s)).Int("depth", len(sm.stack)).Msg("push")
	s.Enter()
}

// Pop снимает активное состояние. На стеке из одного состояния ничего не делает.
func (sm *StateMachine) Pop() {
	if len(sm.stack) <= 1 {
		sm.log.Warn().Int("depth", len(sm.stack)).Msg("pop on singleton stack ignored")
		return
	}
	top := sm.stack[len(sm.stack)-1]
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
	sm.log.Debug().Str("state", nameOf(top)).Int("depth", len(sm.stack)).Msg("pop")
	if r, ok := sm.Current().(Resumer); ok {
		r.Resume()
	}
}

// Replace очищает стек и кладёт s.
func (sm *StateMachine) Replace(s State) {
	if s == nil {
		sm.log.Warn().Msg("replace with nil state ignored")
		return
	}
	for i := len(sm.stack) - 1; i >= 0; i-- {
		sm.stack[i].Exit()
	}
	sm.stack = sm.stack[:0]
	sm.Push(s)
}

// Current возвращает активное состояние. Пустой стек — ошибка программы.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		panic("state stack is empty")
	}
	return sm.stack[len(sm.stack)-1]
}

// Below — состояние под активным.
func (sm *StateMachine) Below() (State, bool) {
	if len(sm.stack) < 2 {
		return nil, false
	}
	return sm.stack[len(sm.stack)-2], true
}

// Find ищет состояние сверху вниз.
func (sm *StateMachine) Find(match func(State) bool) (State, bool) {
	for i := len(sm.stack) - 1; i >= 0; i-- {
		if match(sm.stack[i]) {
			return sm.stack[i], true
		}
	}
	return nil, false
}

// Len — глубина стека.
func (sm *StateMachine) Len() int { return len(sm.stack) }

// ProcessInput передаёт ввод активному состоянию
func (sm *StateMachine) ProcessInput(in input.Reader) {
	sm.Current().ProcessInput(in)
}

// Update обновляет активное состояние
func (sm *StateMachine) Update(deltaTime float64) {
	sm.Current().Update(deltaTime)
}

// Draw отрисовывает активное состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	sm.Current().Draw(screen)
}
