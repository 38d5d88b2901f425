// internal/app/session.go
package app

import (
	"pixel-war/internal/config"
	"pixel-war/internal/save"
	"pixel-war/internal/system"
)

// UpgradePlayerSpeed увеличивает скорость корабля.
func (g *Game) UpgradePlayerSpeed(delta float64) {
	if p, ok := g.ECS.Pilots[g.PlayerID]; ok {
		p.Speed += delta
	}
}

// UpgradeProjectileSpeed увеличивает скорость новых снарядов.
func (g *Game) UpgradeProjectileSpeed(delta float64) {
	g.ProjectileSpeed += delta
}

// UpgradeShieldDuration удлиняет щит для следующих бонусов.
func (g *Game) UpgradeShieldDuration(deltaMs float64) {
	g.ShieldDurationMs += deltaMs
}

// AddLife добавляет жизнь.
func (g *Game) AddLife() {
	g.Lives++
}

// Snapshot — данные для сохранения.
func (g *Game) Snapshot() save.Snapshot {
	x, y := g.PlayerPosition()
	return save.Snapshot{
		Score:            g.Score,
		Level:            g.Level,
		Lives:            g.Lives,
		PlayerX:          x,
		PlayerY:          y,
		PlayerSpeed:      g.PlayerSpeed(),
		ProjectileSpeed:  g.ProjectileSpeed,
		ShieldActive:     g.ShieldActive,
		ShieldTimerMs:    g.ShieldTimerMs,
		ShieldDurationMs: g.ShieldDurationMs,
	}
}

// restore переносит сохранённые поля. Уровень пересчитывается из счёта,
// на поле добавляются враги пройденных уровней.
func (g *Game) restore(s save.Snapshot) {
	g.Score = s.Score
	g.Level = s.Score/config.ScorePerLevel + 1
	g.Lives = s.Lives
	if g.Lives <= 0 {
		g.Lives = 1
	}
	if pos, ok := g.ECS.Positions[g.PlayerID]; ok {
		pos.X, pos.Y = s.PlayerX, s.PlayerY
	}
	if s.PlayerSpeed > 0 {
		g.ECS.Pilots[g.PlayerID].Speed = s.PlayerSpeed
	}
	if s.ProjectileSpeed > 0 {
		g.ProjectileSpeed = s.ProjectileSpeed
	}
	if s.ShieldDurationMs > 0 {
		g.ShieldDurationMs = s.ShieldDurationMs
	}
	g.ShieldActive = s.ShieldActive
	g.ShieldTimerMs = s.ShieldTimerMs

	for _, p := range g.ECS.Patrols {
		p.Speed = system.EnemySpeed(p.BaseSpeed, g.Level)
	}
	for lvl := 2; lvl <= g.Level; lvl++ {
		g.SpawnSystem.SpawnLevelEnemy(g.Level)
	}
	if g.Level >= config.BossMinLevel {
		g.SpawnSystem.SpawnBoss(g.Level, g.settings.BossHealth)
	}
}
