// internal/dialogue/box.go
package dialogue

import (
	"pixel-war/internal/defs"
	"pixel-war/internal/input"
)

// Phase — этап работы окна диалога.
type Phase int

const (
	Revealing Phase = iota
	Choosing
	Done
)

// Result — итог диалога.
type Result struct {
	Key string
	OK  bool // false — игрок вышел без выбора
}

// Box — посимвольный вывод текста и выбор ответа.
// Завершённый прогон записывает текст в журнал.
type Box struct {
	Dialogue defs.BranchingDialogue

	delayMs   float64
	elapsedMs float64
	revealed  int
	selected  int
	phase     Phase
	result    Result
	journal   *Journal
	text      []rune
}

// NewBox создаёт окно с задержкой delayMs на символ.
func NewBox(d defs.BranchingDialogue, delayMs float64, journal *Journal) *Box {
	return &Box{Dialogue: d, delayMs: delayMs, journal: journal, text: []rune(d.Text)}
}

func (b *Box) Phase() Phase        { return b.phase }
func (b *Box) Selected() int       { return b.selected }
func (b *Box) Result() Result      { return b.result }
func (b *Box) Finished() bool      { return b.phase == Done }
func (b *Box) VisibleText() string { return string(b.text[:b.revealed]) }

// Update открывает символы по прошествии времени.
func (b *Box) Update(dtMs float64) {
	if b.phase != Revealing || b.delayMs <= 0 {
		if b.phase == Revealing {
			b.revealAll()
		}
		return
	}
	b.elapsedMs += dtMs
	for b.elapsedMs >= b.delayMs && b.revealed < len(b.text) {
		b.elapsedMs -= b.delayMs
		b.revealed++
	}
	if b.revealed >= len(b.text) {
		b.revealAll()
	}
}

// HandleInput: Escape — выход без выбора; во время вывода любая клавиша
// показывает весь текст; в режиме выбора стрелки с переносом, Enter — подтверждение.
func (b *Box) HandleInput(in input.Reader) {
	if b.phase == Done {
		return
	}
	if in.JustPressed(input.KeyEscape) {
		b.finish(Result{})
		return
	}
	switch b.phase {
	case Revealing:
		if in.AnyJustPressed() {
			b.revealAll()
		}
	case Choosing:
		n := len(b.Dialogue.Choices)
		switch {
		case in.JustPressed(input.KeyUp):
			b.selected = (b.selected - 1 + n) % n
		case in.JustPressed(input.KeyDown):
			b.selected = (b.selected + 1) % n
		case in.JustPressed(input.KeyEnter):
			b.finish(Result{Key: b.Dialogue.Choices[b.selected].Key, OK: true})
		}
	}
}

func (b *Box) revealAll() {
	b.revealed = len(b.text)
	if len(b.Dialogue.Choices) == 0 {
		b.finish(Result{OK: true})
		return
	}
	b.phase = Choosing
}

func (b *Box) finish(r Result) {
	b.result = r
	b.phase = Done
	if r.OK && b.journal != nil {
		b.journal.Append(b.Dialogue.Text)
	}
}
