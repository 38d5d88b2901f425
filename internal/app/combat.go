// internal/app/combat.go
package app

import (
	"pixel-war/internal/component"
	"pixel-war/internal/config"
	"pixel-war/internal/event"
	"pixel-war/internal/transition"
)

// resolveCollisions применяет правила боя в фиксированном порядке.
func (g *Game) resolveCollisions() {
	g.resolveProjectileHits()
	g.resolveBossProjectileHit()
	g.resolvePowerUps()
	g.resolveEnemyContact()
}

// resolveProjectileHits: каждая пара снаряд×враг расходует снаряд.
// Враг, уничтоженный раньше в этом же проходе, пропускается.
func (g *Game) resolveProjectileHits() {
	for _, hit := range g.CollisionSystem.Pairs(component.GroupProjectiles, component.GroupEnemies) {
		g.ECS.Remove(hit.A)
		enemy := hit.B
		if !g.ECS.Alive(enemy) {
			continue
		}
		pos := g.ECS.Positions[enemy]
		data := event.EnemyData{Kind: g.ECS.Kinds[enemy], X: pos.X, Y: pos.Y}
		g.Score += config.ScorePerHit
		g.SpawnSystem.SpawnExplosion(pos.X, pos.Y)

		health, ok := g.ECS.Healths[enemy]
		if !ok {
			// враг без здоровья не погибает, а переносится
			g.SpawnSystem.Reposition(enemy)
			g.EventDispatcher.Emit(event.EnemyHit, data)
			continue
		}
		health.Value--
		if health.Value > 0 {
			g.EventDispatcher.Emit(event.EnemyHit, data)
			continue
		}
		g.Score += config.ScorePerKill
		g.ECS.Remove(enemy)
		if data.Kind == component.KindBoss {
			g.log.Info().Int("score", g.Score).Msg("boss destroyed")
			g.EventDispatcher.Emit(event.BossKilled, data)
		} else {
			g.EventDispatcher.Emit(event.EnemyKilled, data)
		}
	}
}

// resolveBossProjectileHit обрабатывает не больше одного попадания за тик.
func (g *Game) resolveBossProjectileHit() {
	id, ok := g.CollisionSystem.First(g.PlayerID, component.GroupBossProjectiles)
	if !ok {
		return
	}
	if g.takeHit() {
		g.ECS.Remove(id)
	}
}

func (g *Game) resolvePowerUps() {
	for _, id := range g.CollisionSystem.Overlapping(g.PlayerID, component.GroupPowerUps) {
		shield := g.ECS.Kinds[id] == component.KindShieldPowerUp
		g.ECS.Remove(id)
		if shield {
			g.ShieldActive = true
			g.ShieldTimerMs = g.ShieldDurationMs
		} else {
			g.Lives++
		}
		g.EventDispatcher.Emit(event.PowerUpCollected, event.PowerUpData{Shield: shield})
	}
}

// resolveEnemyContact: враги при касании не уничтожаются.
func (g *Game) resolveEnemyContact() {
	if _, ok := g.CollisionSystem.First(g.PlayerID, component.GroupEnemies); ok {
		g.takeHit()
	}
}

// takeHit: щит поглощает удар, иначе вне неуязвимости теряется жизнь.
// Возвращает true, если удар поглощён щитом.
func (g *Game) takeHit() (absorbed bool) {
	switch {
	case g.ShieldActive:
		g.ShieldActive = false
		g.ShieldTimerMs = 0
		g.log.Info().Msg("shield absorbed hit")
		g.EventDispatcher.Emit(event.ShieldAbsorbed, nil)
		return true
	case g.InvulnerableMs <= 0:
		g.Lives--
		g.feedback.PlayHit()
		g.PlayerSystem.Recenter(g.PlayerID)
		g.InvulnerableMs = config.InvulnerableMs
		g.EventDispatcher.Emit(event.PlayerHit, event.PlayerHitData{LivesLeft: g.Lives})
		if g.Lives <= 0 {
			g.gameOver()
		}
	}
	return false
}

func (g *Game) gameOver() {
	g.over = true
	g.feedback.StopMusic()
	g.log.Info().Int("score", g.Score).Msg("game over")
	g.EventDispatcher.Emit(event.GameOver, event.ScoreData{Score: g.Score})
	// оверлеи мёртвой сессии не открываются
	g.requests.Clear()
	g.requests.Post(transition.Request{Kind: transition.ToGameOver, Score: g.Score})
}
