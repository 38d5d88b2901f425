// internal/input/input.go
package input

// Key — клавиша, независимая от движка.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyEnter
	KeyEscape
	KeyP
	KeyO
	KeyR
	KeyM
	KeyC
	KeyL
	KeyQ
	KeyI
	KeyJ
	KeyK
	KeyT
	KeyE
	KeyF3
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	keyCount
)

// AllKeys перечисляет все известные клавиши.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Reader — снимок клавиатуры на текущий тик.
type Reader interface {
	// Pressed — клавиша удерживается.
	Pressed(k Key) bool
	// JustPressed — клавиша нажата в этом тике.
	JustPressed(k Key) bool
	// JustReleased — клавиша отпущена в этом тике.
	JustReleased(k Key) bool
	// AnyJustPressed — нажата хоть одна клавиша.
	AnyJustPressed() bool
}

// Snapshot — Reader на основе множеств, используется адаптером движка и тестами.
type Snapshot struct {
	held     map[Key]bool
	pressed  map[Key]bool
	released map[Key]bool
}

// NewSnapshot создаёт пустой снимок.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		held:     make(map[Key]bool),
		pressed:  make(map[Key]bool),
		released: make(map[Key]bool),
	}
}

// Hold отмечает клавиши как удерживаемые.
func (s *Snapshot) Hold(keys ...Key) *Snapshot {
	for _, k := range keys {
		s.held[k] = true
	}
	return s
}

// Press отмечает клавиши как нажатые в этом тике (и удерживаемые).
func (s *Snapshot) Press(keys ...Key) *Snapshot {
	for _, k := range keys {
		s.pressed[k] = true
		s.held[k] = true
	}
	return s
}

// Release отмечает клавиши как отпущенные в этом тике.
func (s *Snapshot) Release(keys ...Key) *Snapshot {
	for _, k := range keys {
		s.released[k] = true
		delete(s.held, k)
	}
	return s
}

func (s *Snapshot) Pressed(k Key) bool      { return s.held[k] }
func (s *Snapshot) JustPressed(k Key) bool  { return s.pressed[k] }
func (s *Snapshot) JustReleased(k Key) bool { return s.released[k] }
func (s *Snapshot) AnyJustPressed() bool    { return len(s.pressed) > 0 }

// Empty — Reader без нажатий.
var Empty Reader = NewSnapshot()
