// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"pixel-war/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUDData — то, что показывает игровой интерфейс.
type HUDData struct {
	Score, Level, Lives int
	ShieldActive        bool
	ShieldLeftMs        float64
}

// HUD — счёт слева, уровень по центру, жизни справа.
type HUD struct {
	lives *LivesIndicator
}

func NewHUD() *HUD {
	return &HUD{lives: NewLivesIndicator(config.ScreenWidth-10, 10)}
}

func (h *HUD) Draw(screen *ebiten.Image, d HUDData) {
	DrawText(screen, fmt.Sprintf("Score: %d", d.Score), 10, 10, config.TextLightColor)
	DrawCentered(screen, fmt.Sprintf("Level: %d", d.Level), 10, config.TextLightColor)
	h.lives.Draw(screen, d.Lives, config.PlayerLives)
	if d.ShieldActive {
		DrawText(screen, fmt.Sprintf("Shield: %.1fs", d.ShieldLeftMs/1000), 10, 10+config.LineHeight, config.ShieldColor)
	}
}

// DrawShield — кольцо щита вокруг игрока.
func DrawShield(screen *ebiten.Image, x, y float64) {
	vector.StrokeCircle(screen, float32(x), float32(y), 35, 3, config.ShieldColor, true)
}

// DrawBossBar — полоска здоровья над боссом.
func DrawBossBar(screen *ebiten.Image, left, top, width float64, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	ratio := float32(health) / float32(maxHealth)
	x, y := float32(left), float32(top-config.BossBarOffset)
	vector.DrawFilledRect(screen, x, y, float32(width), config.BossBarHeight, config.BossBarBack, true)
	vector.DrawFilledRect(screen, x, y, float32(width)*ratio, config.BossBarHeight, config.BossBarColor, true)
	vector.StrokeRect(screen, x, y, float32(width), config.BossBarHeight, 1, color.White, true)
}

// DrawDebug — FPS и позиция игрока.
func DrawDebug(screen *ebiten.Image, fps, x, y float64) {
	DrawText(screen, fmt.Sprintf("FPS: %.1f", fps), 10, 40, config.DebugTextColor)
	DrawText(screen, fmt.Sprintf("Pos: (%.0f, %.0f)", x, y), 10, 60, config.DebugTextColor)
}

// DrawOverlay затемняет экран.
func DrawOverlay(screen *ebiten.Image, clr color.Color) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, clr, false)
}
