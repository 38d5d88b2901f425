// internal/ui/text.go
package ui

import (
	"image/color"
	"strings"

	"pixel-war/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face — шрифт интерфейса.
var Face font.Face = basicfont.Face7x13

// TextWidth — ширина строки в пикселях.
func TextWidth(s string) int {
	return font.MeasureString(Face, s).Ceil()
}

// DrawText рисует строку; y — верх строки.
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, Face, x, y+Face.Metrics().Ascent.Ceil(), clr)
}

// DrawCentered рисует строку по центру экрана.
func DrawCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	DrawText(screen, s, (config.ScreenWidth-TextWidth(s))/2, y, clr)
}

// DrawLines рисует строки столбцом, возвращает y под последней.
func DrawLines(screen *ebiten.Image, lines []string, x, y int, clr color.Color) int {
	for _, line := range lines {
		DrawText(screen, line, x, y, clr)
		y += config.LineHeight
	}
	return y
}

// Wrap разбивает текст на строки не шире maxWidth; переводы строк сохраняются.
func Wrap(s string, maxWidth int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, w := range words[1:] {
			candidate := current + " " + w
			if TextWidth(candidate) > maxWidth {
				lines = append(lines, current)
				current = w
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}
