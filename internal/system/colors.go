package system

import "image/color"

// Цвета-заглушки, если спрайт не загрузился.
var (
	colorPlayer         = color.RGBA{60, 200, 90, 255}
	colorEnemy          = color.RGBA{200, 60, 60, 255}
	colorBoss           = color.RGBA{150, 20, 160, 255}
	colorProjectile     = color.RGBA{255, 240, 120, 255}
	colorBossProjectile = color.RGBA{255, 90, 30, 255}
	colorPowerUp        = color.RGBA{90, 255, 120, 255}
	colorShield         = color.RGBA{80, 180, 255, 255}
	colorExplosion      = color.RGBA{255, 160, 40, 200}
	colorDrone          = color.RGBA{200, 200, 80, 255}
	colorStructure      = color.RGBA{110, 110, 130, 255}
)
