package interfaces

import "pixel-war/internal/save"

// PlayHandle — то, что оверлеи (пауза, магазин улучшений, настройки)
// могут делать с активной игровой сессией.
type PlayHandle interface {
	UpgradePlayerSpeed(delta float64)
	UpgradeProjectileSpeed(delta float64)
	UpgradeShieldDuration(deltaMs float64)
	AddLife()
	Snapshot() save.Snapshot
}
