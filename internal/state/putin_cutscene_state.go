// internal/state/putin_cutscene_state.go
package state

import (
	"pixel-war/internal/config"
	"pixel-war/internal/input"
	"pixel-war/internal/transition"
	"pixel-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// PutinCutsceneState — полноэкранная картинка на 3 секунды посреди брифинга.
type PutinCutsceneState struct {
	base
	ctx       *Context
	elapsedMs float64
	done      bool
}

func NewPutinCutsceneState(ctx *Context) *PutinCutsceneState {
	return &PutinCutsceneState{ctx: ctx}
}

func (p *PutinCutsceneState) ProcessInput(in input.Reader) {
	if in.JustPressed(input.KeySpace) {
		p.finish()
	}
}

func (p *PutinCutsceneState) Update(deltaTime float64) {
	p.elapsedMs += deltaTime * 1000
	if p.elapsedMs >= config.PutinCutsceneDurationMs {
		p.finish()
	}
}

func (p *PutinCutsceneState) finish() {
	if p.done {
		return
	}
	p.done = true
	p.requests.Request(transition.ToDialogue)
}

func (p *PutinCutsceneState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if p.ctx.Sprites != nil && !p.ctx.Sprites.Missing(config.PutinImage) {
		screen.DrawImage(p.ctx.Sprites.Image(config.PutinImage, config.ScreenWidth, config.ScreenHeight), nil)
		return
	}
	ui.DrawCentered(screen, "[ intercepted transmission ]", config.ScreenHeight/2, config.TextDimColor)
}
