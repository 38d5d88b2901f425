// internal/state/journal_state.go
package state

import (
	"pixel-war/internal/config"
	"pixel-war/internal/input"
	"pixel-war/internal/transition"
	"pixel-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// JournalState — прокручиваемый текст: журнал квестов, диалогов или инвентарь.
// Текст перечитывается при входе.
type JournalState struct {
	base
	title string
	text  func() string
	under State
	panel *ui.ScrollPanel
}

func NewJournalState(title string, under State, text func() string) *JournalState {
	return &JournalState{title: title, text: text, under: under, panel: ui.NewScrollPanel(title, "")}
}

func (j *JournalState) Enter() {
	j.panel = ui.NewScrollPanel(j.title, j.text())
}

// Panel — панель с текущим текстом и смещением.
func (j *JournalState) Panel() *ui.ScrollPanel { return j.panel }

func (j *JournalState) ProcessInput(in input.Reader) {
	switch {
	case in.JustPressed(input.KeyUp):
		j.panel.Scroll(-config.JournalScrollStep)
	case in.JustPressed(input.KeyDown):
		j.panel.Scroll(config.JournalScrollStep)
	case in.JustPressed(input.KeyEscape):
		j.requests.Request(transition.Back)
	}
}

func (j *JournalState) Update(deltaTime float64) {}

func (j *JournalState) Draw(screen *ebiten.Image) {
	if j.under != nil {
		j.under.Draw(screen)
	}
	j.panel.Draw(screen)
}
