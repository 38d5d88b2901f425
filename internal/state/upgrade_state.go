// internal/state/upgrade_state.go
package state

import (
	"pixel-war/internal/config"
	"pixel-war/internal/input"
	"pixel-war/internal/interfaces"
	"pixel-war/internal/transition"
	"pixel-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// UpgradeState — выбор одного улучшения после повышения уровня.
type UpgradeState struct {
	base
	play   interfaces.PlayHandle
	under  State
	chosen bool
}

func NewUpgradeState(play interfaces.PlayHandle, under State) *UpgradeState {
	return &UpgradeState{play: play, under: under}
}

func (u *UpgradeState) ProcessInput(in input.Reader) {
	if u.chosen {
		return
	}
	switch {
	case in.JustPressed(input.Key1):
		u.play.UpgradePlayerSpeed(config.UpgradeSpeedStep)
	case in.JustPressed(input.Key2):
		u.play.UpgradeProjectileSpeed(config.UpgradeProjStep)
	case in.JustPressed(input.Key3):
		u.play.UpgradeShieldDuration(config.UpgradeShieldMs)
	case in.JustPressed(input.Key4):
		u.play.AddLife()
	default:
		return
	}
	u.chosen = true
	u.requests.Request(transition.ToPlay)
}

func (u *UpgradeState) Update(deltaTime float64) {}

func (u *UpgradeState) Draw(screen *ebiten.Image) {
	if u.under != nil {
		u.under.Draw(screen)
	}
	ui.DrawOverlay(screen, config.OverlayColor)
	ui.DrawCentered(screen, "Level Up! Choose an upgrade", 160, config.HighlightColor)
	ui.DrawLines(screen, []string{
		"1 - Player speed +1",
		"2 - Projectile speed +2",
		"3 - Shield duration +0.1s",
		"4 - Extra life",
	}, 260, 230, config.TextLightColor)
}
