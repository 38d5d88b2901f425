// internal/ui/menu.go
package ui

import (
	"pixel-war/internal/config"
	"pixel-war/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// Menu — вертикальный список пунктов с выделением.
type Menu struct {
	Items    []string
	Selected int
}

func NewMenu(items ...string) *Menu {
	return &Menu{Items: items}
}

// HandleInput двигает выделение (Up/Down с переходом через край).
// Возвращает индекс пункта, подтверждённого Enter.
func (m *Menu) HandleInput(in input.Reader) (int, bool) {
	n := len(m.Items)
	if n == 0 {
		return 0, false
	}
	switch {
	case in.JustPressed(input.KeyUp):
		m.Selected = (m.Selected - 1 + n) % n
	case in.JustPressed(input.KeyDown):
		m.Selected = (m.Selected + 1) % n
	case in.JustPressed(input.KeyEnter):
		return m.Selected, true
	}
	return 0, false
}

// Current — выбранный пункт.
func (m *Menu) Current() string {
	if len(m.Items) == 0 {
		return ""
	}
	return m.Items[m.Selected]
}

// Draw рисует пункты по центру, начиная с y.
func (m *Menu) Draw(screen *ebiten.Image, y int) {
	for i, item := range m.Items {
		clr := config.TextLightColor
		label := item
		if i == m.Selected {
			clr = config.HighlightColor
			label = "> " + item + " <"
		}
		DrawCentered(screen, label, y+i*config.LineHeight*2, clr)
	}
}
