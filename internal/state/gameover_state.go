// internal/state/gameover_state.go
package state

import (
	"fmt"

	"pixel-war/internal/config"
	"pixel-war/internal/input"
	"pixel-war/internal/logging"
	"pixel-war/internal/transition"
	"pixel-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverState — итог партии и рекорд.
type GameOverState struct {
	base
	ctx       *Context
	score     int
	highScore int
	record    bool
}

func NewGameOverState(ctx *Context, score int) *GameOverState {
	return &GameOverState{ctx: ctx, score: score}
}

// Enter записывает рекорд, если он побит.
func (g *GameOverState) Enter() {
	prev := g.ctx.Scores.Load()
	best, err := g.ctx.Scores.Submit(g.score)
	if err != nil {
		logging.For("gameover").Error().Err(err).Msg("failed to save high score")
	}
	g.highScore = best
	g.record = g.score > prev
}

// HighScore — рекорд с учётом этой партии.
func (g *GameOverState) HighScore() int { return g.highScore }

func (g *GameOverState) ProcessInput(in input.Reader) {
	switch {
	case in.JustPressed(input.KeyR):
		g.requests.Request(transition.ToPlay)
	case in.JustPressed(input.KeyM):
		g.requests.Request(transition.ToMenu)
	}
}

func (g *GameOverState) Update(deltaTime float64) {}

func (g *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "Game Over", 180, config.BossBarColor)
	ui.DrawCentered(screen, fmt.Sprintf("Score: %d", g.score), 240, config.TextLightColor)
	ui.DrawCentered(screen, fmt.Sprintf("High Score: %d", g.highScore), 270, config.TextLightColor)
	if g.record {
		ui.DrawCentered(screen, "New record!", 300, config.HighlightColor)
	}
	ui.DrawCentered(screen, "R - Restart   M - Menu", 360, config.TextDimColor)
}
