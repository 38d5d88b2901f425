// internal/state/settings_state.go
package state

import (
	"fmt"

	"pixel-war/internal/config"
	"pixel-war/internal/input"
	"pixel-war/internal/logging"
	"pixel-war/internal/transition"
	"pixel-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// SettingsState — настройки поверх игры. Изменения действуют сразу,
// S записывает их в файл.
type SettingsState struct {
	base
	ctx     *Context
	under   State
	message string
	log     zerolog.Logger
}

func NewSettingsState(ctx *Context, under State) *SettingsState {
	return &SettingsState{ctx: ctx, under: under, log: logging.For("settings")}
}

func (s *SettingsState) ProcessInput(in input.Reader) {
	set := s.ctx.Settings
	switch {
	case in.JustPressed(input.Key1):
		set.AdjustVolume(config.VolumeStep)
		s.ctx.Sound.SetVolume(set.Volume)
	case in.JustPressed(input.Key2):
		set.AdjustVolume(-config.VolumeStep)
		s.ctx.Sound.SetVolume(set.Volume)
	case in.JustPressed(input.Key3):
		set.ToggleControls()
	case in.JustPressed(input.Key4):
		set.ToggleTheme()
	case in.JustPressed(input.Key5):
		set.AdjustBossHealth(1)
	case in.JustPressed(input.Key6):
		set.AdjustBossHealth(-1)
	case in.JustPressed(input.KeyR):
		s.resetHighScore()
	case in.JustPressed(input.KeyS):
		s.persist()
		s.requests.Request(transition.ToPlay)
	case in.JustPressed(input.KeyEscape):
		s.requests.Request(transition.ToPlay)
	}
}

func (s *SettingsState) persist() {
	if s.ctx.SettingsPath == "" {
		return
	}
	if err := config.SaveSettings(s.ctx.SettingsPath, s.ctx.Settings); err != nil {
		s.log.Error().Err(err).Str("path", s.ctx.SettingsPath).Msg("failed to save settings")
		return
	}
	s.log.Info().Str("path", s.ctx.SettingsPath).Msg("settings saved")
}

func (s *SettingsState) resetHighScore() {
	if err := s.ctx.Scores.Reset(); err != nil {
		s.log.Error().Err(err).Msg("failed to reset high score")
		s.message = "Could not reset high score."
		return
	}
	s.message = "High score reset."
}

func (s *SettingsState) Update(deltaTime float64) {}

func (s *SettingsState) Draw(screen *ebiten.Image) {
	if s.under != nil {
		s.under.Draw(screen)
	} else {
		screen.Fill(config.BackgroundColor)
	}
	ui.DrawOverlay(screen, config.OverlayColor)
	set := s.ctx.Settings
	ui.DrawCentered(screen, "Settings", 120, config.HighlightColor)
	ui.DrawLines(screen, []string{
		fmt.Sprintf("1/2  Volume: %.0f%%", set.Volume*100),
		fmt.Sprintf("3    Controls: %s", set.ControlScheme),
		fmt.Sprintf("4    Theme: %s", set.ArtTheme),
		fmt.Sprintf("5/6  Boss health: %d", set.BossHealth),
		"R    Reset high score",
		"",
		"S - save and return   Esc - return",
	}, 220, 180, config.TextLightColor)
	if s.message != "" {
		ui.DrawCentered(screen, s.message, 420, config.HighlightColor)
	}
}
