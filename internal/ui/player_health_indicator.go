// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LivesCols          = 5
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 4.0
)

var (
	lifeFullColor  = color.RGBA{220, 50, 50, 255}
	lifeExtraColor = color.RGBA{60, 120, 240, 255}
)

// LivesIndicator рисует жизни игрока сеткой кружков в правом верхнем углу.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw: первые base жизней красные, бонусные сверх base синие.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, base int) {
	label := "Lives: " + strconv.Itoa(lives)
	DrawText(screen, label, int(i.X)-TextWidth(label), int(i.Y), color.White)

	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < lives; j++ {
		row, col := j/LivesCols, j%LivesCols
		cx := i.X - float32(col)*step - LivesCircleRadius
		cy := i.Y + 22 + float32(row)*step
		clr := lifeFullColor
		if j >= base {
			clr = lifeExtraColor
		}
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, clr, true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, color.White, true)
	}
}
