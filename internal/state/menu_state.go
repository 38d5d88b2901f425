// internal/state/menu_state.go
package state

import (
	"errors"
	"fmt"

	"pixel-war/internal/config"
	"pixel-war/internal/input"
	"pixel-war/internal/logging"
	"pixel-war/internal/save"
	"pixel-war/internal/transition"
	"pixel-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// MenuState — главное меню
type MenuState struct {
	base
	ctx       *Context
	highScore int
	hasSave   bool
	message   string
	log       zerolog.Logger
}

func NewMenuState(ctx *Context) *MenuState {
	return &MenuState{ctx: ctx, log: logging.For("menu")}
}

func (m *MenuState) Enter() {
	m.refresh()
}

// Resume перечитывает рекорд, когда меню снова наверху.
func (m *MenuState) Resume() {
	m.refresh()
}

func (m *MenuState) refresh() {
	m.highScore = m.ctx.Scores.Load()
	m.hasSave = m.ctx.Saves.Exists(config.SaveFile)
}

func (m *MenuState) ProcessInput(in input.Reader) {
	switch {
	case in.JustPressed(input.KeyEnter):
		m.requests.Request(transition.ToPlay)
	case in.JustPressed(input.KeyD):
		m.requests.Request(transition.ToDialogue)
	case in.JustPressed(input.KeyC):
		m.requests.Request(transition.ToCutscene)
	case in.JustPressed(input.KeyL):
		m.loadGame()
	case in.JustPressed(input.KeyEscape), in.JustPressed(input.KeyQ):
		m.requests.Request(transition.Quit)
	}
}

func (m *MenuState) loadGame() {
	snap, err := m.ctx.Saves.Load(config.SaveFile)
	if errors.Is(err, save.ErrNoSave) {
		m.log.Warn().Msg("no saved game")
		m.message = "No saved game."
		return
	}
	if err != nil {
		m.log.Error().Err(err).Msg("failed to load saved game")
		m.message = "Saved game is damaged."
		return
	}
	m.requests.Post(transition.Request{Kind: transition.ToPlay, Snapshot: &snap})
}

func (m *MenuState) Update(deltaTime float64) {}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, config.WindowTitle, 150, config.HighlightColor)
	ui.DrawCentered(screen, "Press Enter to Start", 250, config.TextLightColor)
	help := "D - Briefing   C - Intro"
	if m.hasSave {
		help += "   L - Load game"
	}
	ui.DrawCentered(screen, help, 290, config.TextDimColor)
	ui.DrawCentered(screen, "Esc / Q - Quit", 320, config.TextDimColor)
	ui.DrawCentered(screen, fmt.Sprintf("High Score: %d", m.highScore), 400, config.TextLightColor)
	if m.message != "" {
		ui.DrawCentered(screen, m.message, 440, config.TextDimColor)
	}
}
