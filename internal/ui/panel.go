// internal/ui/panel.go
package ui

import (
	"pixel-war/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelMargin  = 40
	panelPadding = 16
)

// ScrollPanel — прокручиваемая текстовая панель журналов и инвентаря.
type ScrollPanel struct {
	Title  string
	Text   string
	Offset int
}

func NewScrollPanel(title, body string) *ScrollPanel {
	return &ScrollPanel{Title: title, Text: body}
}

// Scroll сдвигает содержимое; смещение не уходит ниже нуля.
func (p *ScrollPanel) Scroll(delta int) {
	p.Offset += delta
	if p.Offset < 0 {
		p.Offset = 0
	}
}

func (p *ScrollPanel) Draw(screen *ebiten.Image) {
	w := float32(config.ScreenWidth - 2*panelMargin)
	h := float32(config.ScreenHeight - 2*panelMargin)
	vector.DrawFilledRect(screen, panelMargin, panelMargin, w, h, config.OverlayColor, true)
	vector.StrokeRect(screen, panelMargin, panelMargin, w, h, 2, config.TextDimColor, true)

	DrawCentered(screen, p.Title, panelMargin+panelPadding, config.HighlightColor)

	top := panelMargin + panelPadding + config.LineHeight*2
	bottom := config.ScreenHeight - panelMargin - panelPadding
	y := top - p.Offset
	for _, line := range Wrap(p.Text, int(w)-2*panelPadding) {
		if y >= top && y+config.LineHeight <= bottom {
			DrawText(screen, line, panelMargin+panelPadding, y, config.TextLightColor)
		}
		y += config.LineHeight
	}
	DrawText(screen, "Up/Down: scroll   Esc: back", panelMargin+panelPadding, bottom, config.TextDimColor)
}
