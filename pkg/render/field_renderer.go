// pkg/render/field_renderer.go
package render

import (
	"image/color"

	"pixel-war/internal/component"
	"pixel-war/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprites — источник изображений (assets.ImageManager).
type Sprites interface {
	Image(name string, w, h int) *ebiten.Image
	Missing(name string) bool
}

// SheetSprites — источник, умеющий резать полосы кадров.
type SheetSprites interface {
	SpriteSheet(name string, fw, fh, n int) []*ebiten.Image
}

// DrawOrder — порядок отрисовки групп поля.
var DrawOrder = []component.Group{
	component.GroupStructures,
	component.GroupPlayer,
	component.GroupEnemies,
	component.GroupProjectiles,
	component.GroupBossProjectiles,
	component.GroupPowerUps,
	component.GroupExplosions,
	component.GroupDrones,
}

// FieldRenderer рисует сущности игрового поля.
type FieldRenderer struct {
	sprites Sprites
}

func NewFieldRenderer(sprites Sprites) *FieldRenderer {
	return &FieldRenderer{sprites: sprites}
}

func (r *FieldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, pal Palette) {
	for _, g := range DrawOrder {
		for _, id := range ecs.Group(g) {
			rnd, ok := ecs.Renderables[id]
			if !ok {
				continue
			}
			l, t, right, b, ok := ecs.Rect(id)
			if !ok {
				continue
			}
			w, h := right-l, b-t
			alpha := 1.0
			if life, ok := ecs.Lifetimes[id]; ok {
				alpha = 1 - life.Progress()
			}
			r.drawEntity(screen, rnd, l, t, w, h, alpha, pal)
		}
	}
}

func (r *FieldRenderer) drawEntity(screen *ebiten.Image, rnd *component.Renderable, x, y, w, h, alpha float64, pal Palette) {
	if rnd.Frames > 1 && r.drawFrame(screen, rnd, x, y, w, h, alpha, pal) {
		return
	}
	if rnd.Sprite != "" && r.sprites != nil {
		img := r.sprites.Image(rnd.Sprite, int(w), int(h))
		if !r.sprites.Missing(rnd.Sprite) {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, y)
			op.ColorScale.ScaleWithColor(pal.Tint)
			op.ColorScale.ScaleAlpha(float32(alpha))
			screen.DrawImage(img, op)
			return
		}
	}
	clr := scaleAlpha(tint(rnd.Color, pal.Tint), alpha)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// drawFrame рисует кадр анимации; кадр выбирается по прожитой доле 1-alpha.
func (r *FieldRenderer) drawFrame(screen *ebiten.Image, rnd *component.Renderable, x, y, w, h, alpha float64, pal Palette) bool {
	sheets, ok := r.sprites.(SheetSprites)
	if !ok || rnd.Sprite == "" {
		return false
	}
	frames := sheets.SpriteSheet(rnd.Sprite, int(w), int(h), rnd.Frames)
	if len(frames) == 0 || r.sprites.Missing(rnd.Sprite) {
		return false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(pal.Tint)
	screen.DrawImage(frames[frameIndex(1-alpha, len(frames))], op)
	return true
}

// frameIndex — номер кадра для доли progress из n кадров.
func frameIndex(progress float64, n int) int {
	i := int(progress * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func tint(c, by color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(by.R) / 255),
		G: uint8(uint16(c.G) * uint16(by.G) / 255),
		B: uint8(uint16(c.B) * uint16(by.B) / 255),
		A: c.A,
	}
}

// scaleAlpha умножает все каналы: цвета ebiten премультиплицированы.
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	if a >= 1 {
		return c
	}
	if a < 0 {
		a = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
