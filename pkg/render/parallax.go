// pkg/render/parallax.go
package render

import (
	"math"

	"pixel-war/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Parallax — два слоя фона, сдвигающиеся с разной скоростью.
type Parallax struct {
	sprites    Sprites
	background string
}

func NewParallax(sprites Sprites, background string) *Parallax {
	return &Parallax{sprites: sprites, background: background}
}

// Draw рисует фон со смещениями far (дальний слой) и near (ближний).
func (p *Parallax) Draw(screen *ebiten.Image, far, near float64, pal Palette) {
	screen.Fill(pal.Background)

	if p.sprites != nil && p.background != "" {
		img := p.sprites.Image(p.background, config.ScreenWidth, config.ScreenHeight)
		if !p.sprites.Missing(p.background) {
			for _, x := range tileOffsets(far) {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(x, 0)
				op.ColorScale.ScaleWithColor(pal.Tint)
				screen.DrawImage(img, op)
			}
			p.drawHills(screen, near, pal)
			return
		}
	}

	// без картинки: полосы дальнего слоя
	for _, x := range tileOffsets(far) {
		for i := 0; i < 8; i++ {
			sx := float32(x) + float32(i)*100
			vector.DrawFilledRect(screen, sx, 120, 50, 260, pal.FarLayer, false)
		}
	}
	p.drawHills(screen, near, pal)
}

func (p *Parallax) drawHills(screen *ebiten.Image, near float64, pal Palette) {
	for _, x := range tileOffsets(near) {
		for i := 0; i < 4; i++ {
			cx := float32(x) + float32(i)*200 + 100
			vector.DrawFilledCircle(screen, cx, config.ScreenHeight+40, 120, pal.NearLayer, true)
		}
	}
}

// tileOffsets — позиции двух копий слоя для бесшовной прокрутки.
func tileOffsets(offset float64) [2]float64 {
	o := math.Mod(offset, config.ScreenWidth)
	return [2]float64{-o, config.ScreenWidth - o}
}
