// internal/state/pause_state.go
package state

import (
	"pixel-war/internal/config"
	"pixel-war/internal/input"
	"pixel-war/internal/interfaces"
	"pixel-war/internal/logging"
	"pixel-war/internal/transition"
	"pixel-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

const (
	pauseResume = iota
	pauseSettings
	pauseSave
	pauseQuit
)

// PauseState — состояние паузы
type PauseState struct {
	base
	ctx     *Context
	play    interfaces.PlayHandle
	under   State
	menu    *ui.Menu
	message string
	log     zerolog.Logger
}

func NewPauseState(ctx *Context, play interfaces.PlayHandle, under State) *PauseState {
	return &PauseState{
		ctx:   ctx,
		play:  play,
		under: under,
		menu:  ui.NewMenu("Resume", "Settings", "Save", "Quit"),
		log:   logging.For("pause"),
	}
}

func (p *PauseState) ProcessInput(in input.Reader) {
	if in.JustPressed(input.KeyP) || in.JustPressed(input.KeyEscape) {
		p.requests.Request(transition.ToPlay)
		return
	}
	choice, ok := p.menu.HandleInput(in)
	if !ok {
		return
	}
	switch choice {
	case pauseResume:
		p.requests.Request(transition.ToPlay)
	case pauseSettings:
		p.requests.Request(transition.ToSettings)
	case pauseSave:
		p.saveGame()
	case pauseQuit:
		p.requests.Request(transition.Quit)
	}
}

func (p *PauseState) saveGame() {
	if err := p.ctx.Saves.Save(p.play.Snapshot(), config.SaveFile); err != nil {
		p.log.Error().Err(err).Msg("failed to save game")
		p.message = "Save failed."
		return
	}
	p.message = "Game saved."
}

func (p *PauseState) Update(deltaTime float64) {}

func (p *PauseState) Draw(screen *ebiten.Image) {
	if p.under != nil {
		p.under.Draw(screen)
	}
	ui.DrawOverlay(screen, config.OverlayColor)
	ui.DrawCentered(screen, "Paused", 180, config.HighlightColor)
	p.menu.Draw(screen, 240)
	if p.message != "" {
		ui.DrawCentered(screen, p.message, 420, config.TextDimColor)
	}
}
