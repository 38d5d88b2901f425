// internal/state/cutscene_state.go
package state

import (
	"pixel-war/internal/config"
	"pixel-war/internal/defs"
	"pixel-war/internal/input"
	"pixel-war/internal/transition"
	"pixel-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// CutsceneState — текст, проявляющийся по символу поверх фона.
type CutsceneState struct {
	base
	ctx       *Context
	def       defs.CutsceneDefinition
	text      []rune
	revealed  int
	elapsedMs float64
	alpha     int
	complete  bool
	left      bool
}

func NewCutsceneState(ctx *Context, name string) *CutsceneState {
	def := ctx.Data.LoadCutscene(name)
	return &CutsceneState{ctx: ctx, def: def, text: []rune(def.Text)}
}

// Complete — весь текст показан.
func (c *CutsceneState) Complete() bool { return c.complete }

// Alpha — прозрачность фона 0..255.
func (c *CutsceneState) Alpha() int { return c.alpha }

func (c *CutsceneState) ProcessInput(in input.Reader) {
	if c.left {
		return
	}
	if !c.complete {
		if in.JustPressed(input.KeyEnter) || in.JustPressed(input.KeySpace) {
			c.revealed = len(c.text)
			c.complete = true
		}
		return
	}
	// ждём отпускания Enter, чтобы нажатие не ушло в игру
	if in.JustReleased(input.KeyEnter) {
		c.left = true
		c.requests.Request(transition.ToPlay)
	}
}

func (c *CutsceneState) Update(deltaTime float64) {
	if c.alpha < 255 {
		c.alpha = min(255, c.alpha+config.CutsceneFadeStep)
	}
	if c.complete {
		return
	}
	c.elapsedMs += deltaTime * 1000
	for c.elapsedMs >= config.CutsceneCharDelayMs && c.revealed < len(c.text) {
		c.elapsedMs -= config.CutsceneCharDelayMs
		c.revealed++
	}
	if c.revealed >= len(c.text) {
		c.complete = true
	}
}

func (c *CutsceneState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	a := float32(c.alpha) / 255
	if c.ctx.Sprites != nil && c.def.BgImage != "" && !c.ctx.Sprites.Missing(c.def.BgImage) {
		img := c.ctx.Sprites.Image(c.def.BgImage, config.ScreenWidth, config.ScreenHeight)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(a)
		screen.DrawImage(img, op)
	}
	lines := ui.Wrap(string(c.text[:c.revealed]), config.ScreenWidth-100)
	ui.DrawLines(screen, lines, 50, config.ScreenHeight-200, config.TextLightColor)
	if c.complete {
		ui.DrawCentered(screen, "Press Enter to continue", config.ScreenHeight-40, config.TextDimColor)
	}
}
