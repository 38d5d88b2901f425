// internal/app/game.go
package app

import (
	"math"

	"pixel-war/internal/component"
	"pixel-war/internal/config"
	"pixel-war/internal/entity"
	"pixel-war/internal/event"
	"pixel-war/internal/input"
	"pixel-war/internal/logging"
	"pixel-war/internal/save"
	"pixel-war/internal/system"
	"pixel-war/internal/transition"
	"pixel-war/internal/types"
	"pixel-war/internal/utils"

	"github.com/rs/zerolog"
)

// Feedback — звуковая реакция на события боя.
type Feedback interface {
	PlayHit()
	StopMusic()
}

type silentFeedback struct{}

func (silentFeedback) PlayHit()   {}
func (silentFeedback) StopMusic() {}

// Options настраивает новую игровую сессию.
type Options struct {
	Settings   *config.Settings
	Seed       int64 // 0 — текущее время
	Structures []system.StructureSpec
	Feedback   Feedback
	Events     *event.Dispatcher
	Snapshot   *save.Snapshot // продолжение сохранённой игры
}

// Game — игровая сессия: сущности, счёт, таймеры и порядок тика.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	MovementSystem     *system.MovementSystem
	PlayerSystem       *system.PlayerSystem
	SpawnSystem        *system.SpawnSystem
	BossSystem         *system.BossSystem
	VisualEffectSystem *system.VisualEffectSystem
	CollisionSystem    *system.CollisionSystem
	PlayerID           types.EntityID

	Score             int
	Level             int
	Lives             int
	ShieldActive      bool
	ShieldTimerMs     float64
	ShieldDurationMs  float64
	InvulnerableMs    float64
	PowerUpTimerMs    float64
	PowerUpIntervalMs float64
	ProjectileSpeed   float64
	ParallaxFar       float64
	ParallaxNear      float64
	ShowDebug         bool
	Ticks             int

	settings *config.Settings
	feedback Feedback
	requests transition.Queue
	over     bool
	log      zerolog.Logger
}

// NewGame создаёт сессию: сооружения, игрок в центре и один стартовый враг.
func NewGame(opts Options) *Game {
	if opts.Settings == nil {
		panic("settings cannot be nil")
	}
	if opts.Feedback == nil {
		opts.Feedback = silentFeedback{}
	}
	if opts.Events == nil {
		opts.Events = event.NewDispatcher()
	}
	if opts.Structures == nil {
		opts.Structures = system.DefaultStructures
	}

	ecs := entity.NewECS()
	rng := utils.NewPRNGService(opts.Seed)
	spawn := system.NewSpawnSystem(ecs, rng)
	g := &Game{
		ECS:                ecs,
		EventDispatcher:    opts.Events,
		Rng:                rng,
		MovementSystem:     system.NewMovementSystem(ecs),
		PlayerSystem:       system.NewPlayerSystem(ecs),
		SpawnSystem:        spawn,
		BossSystem:         system.NewBossSystem(ecs, spawn),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		CollisionSystem:    system.NewCollisionSystem(ecs),
		Level:              config.StartLevel,
		Lives:              config.PlayerLives,
		ShieldDurationMs:   config.ShieldDurationMs,
		PowerUpIntervalMs:  config.PowerUpIntervalMs,
		ProjectileSpeed:    config.ProjectileSpeed,
		settings:           opts.Settings,
		feedback:           opts.Feedback,
		log:                logging.For("play"),
	}

	spawn.SpawnStructures(opts.Structures)
	g.PlayerID = spawn.SpawnPlayer(config.PlayerSpeed)
	spawn.SpawnInitialEnemy(g.Level)
	if opts.Snapshot != nil {
		g.restore(*opts.Snapshot)
	}
	g.log.Debug().Int64("seed", rng.Seed()).Msg("play session started")
	return g
}

// Requests — очередь запросов на смену сцены.
func (g *Game) Requests() *transition.Queue { return &g.requests }

// Over — жизни закончились.
func (g *Game) Over() bool { return g.over }

// Settings — настройки, которыми пользуется сессия.
func (g *Game) Settings() *config.Settings { return g.settings }

// HandleInput обрабатывает нажатия (не удержания) клавиш.
func (g *Game) HandleInput(in input.Reader) {
	if g.over {
		return
	}
	if in.JustPressed(input.KeySpace) {
		g.Fire()
	}
	if in.JustPressed(input.KeyF3) {
		g.ShowDebug = !g.ShowDebug
	}
	switch {
	case in.JustPressed(input.KeyP), in.JustPressed(input.KeyEscape):
		g.requests.Request(transition.ToPause)
	case in.JustPressed(input.KeyO):
		g.requests.Request(transition.ToSettings)
	case in.JustPressed(input.KeyI):
		g.requests.Request(transition.ToInventory)
	case in.JustPressed(input.KeyJ):
		g.requests.Request(transition.ToQuestJournal)
	case in.JustPressed(input.KeyL):
		g.requests.Request(transition.ToDialogueJournal)
	case in.JustPressed(input.KeyK):
		g.requests.Request(transition.ToSkillTree)
	case in.JustPressed(input.KeyT):
		g.requests.Request(transition.ToQuestOffer)
	case in.JustPressed(input.KeyE):
		g.requests.Request(transition.ToElder)
	}
}

// Fire выпускает снаряд над кораблём игрока.
func (g *Game) Fire() types.EntityID {
	_, top, _, _, ok := g.ECS.Rect(g.PlayerID)
	if !ok {
		return 0
	}
	x := g.ECS.Positions[g.PlayerID].X
	y := top - config.ProjectileSpawnLift - config.ProjectileHeight/2
	return g.SpawnSystem.SpawnProjectile(x, y, g.ProjectileSpeed)
}

// Update выполняет один тик в фиксированном порядке.
func (g *Game) Update(in input.Reader, deltaTime float64) {
	if g.over {
		return
	}
	dtMs := deltaTime * 1000
	g.Ticks++

	dirX, dirY := g.movementInput(in)
	g.advanceParallax()
	g.PlayerSystem.Move(g.PlayerID, dirX, dirY)

	// враги, снаряды, снаряды босса, бонусы, взрывы, (сооружения неподвижны), дроны
	g.MovementSystem.Update()
	g.VisualEffectSystem.Update()
	g.MovementSystem.UpdateDrones()

	g.SpawnSystem.MaybeSpawnDrone()
	g.Score += config.ScorePerTick
	g.checkLevelUp()
	g.BossSystem.Update()
	g.updatePowerUpTimer(dtMs)
	g.decayShield(dtMs)
	g.decayInvulnerability(dtMs)
	g.resolveCollisions()
}

func (g *Game) movementInput(in input.Reader) (int, int) {
	left, right, up, down := input.KeyLeft, input.KeyRight, input.KeyUp, input.KeyDown
	if g.settings.ControlScheme == config.ControlsWASD {
		left, right, up, down = input.KeyA, input.KeyD, input.KeyW, input.KeyS
	}
	dx, dy := 0, 0
	if in.Pressed(left) {
		dx--
	}
	if in.Pressed(right) {
		dx++
	}
	if in.Pressed(up) {
		dy--
	}
	if in.Pressed(down) {
		dy++
	}
	return dx, dy
}

func (g *Game) advanceParallax() {
	g.ParallaxFar = math.Mod(g.ParallaxFar+config.ParallaxFarRate, config.ScreenWidth)
	g.ParallaxNear = math.Mod(g.ParallaxNear+config.ParallaxNearRate, config.ScreenWidth)
}

// checkLevelUp: уровень всегда равен score/1000 + 1.
func (g *Game) checkLevelUp() {
	level := g.Score/config.ScorePerLevel + 1
	if level <= g.Level {
		return
	}
	g.Level = level
	for _, id := range g.ECS.Group(component.GroupEnemies) {
		if p, ok := g.ECS.Patrols[id]; ok {
			p.Speed = system.EnemySpeed(p.BaseSpeed, level)
		}
	}
	g.SpawnSystem.SpawnLevelEnemy(level)
	if level >= config.BossMinLevel && !g.BossSystem.HasBoss() {
		g.SpawnSystem.SpawnBoss(level, g.settings.BossHealth)
		g.log.Info().Int("game_level", level).Msg("boss spawned")
		g.EventDispatcher.Emit(event.BossSpawned, event.LevelData{Level: level})
	}
	g.log.Info().Int("game_level", level).Int("score", g.Score).Msg("level up")
	g.EventDispatcher.Emit(event.LevelUp, event.LevelData{Level: level})
	g.requests.Request(transition.ToUpgrade)
}

func (g *Game) updatePowerUpTimer(dtMs float64) {
	g.PowerUpTimerMs += dtMs
	if g.PowerUpTimerMs >= g.PowerUpIntervalMs {
		g.SpawnSystem.SpawnPowerUp()
		g.PowerUpTimerMs = 0
	}
}

func (g *Game) decayShield(dtMs float64) {
	if !g.ShieldActive {
		return
	}
	g.ShieldTimerMs -= dtMs
	if g.ShieldTimerMs <= 0 {
		g.ShieldTimerMs = 0
		g.ShieldActive = false
	}
}

func (g *Game) decayInvulnerability(dtMs float64) {
	g.InvulnerableMs = math.Max(0, g.InvulnerableMs-dtMs)
}

// PlayerPosition — центр корабля игрока.
func (g *Game) PlayerPosition() (float64, float64) {
	if pos, ok := g.ECS.Positions[g.PlayerID]; ok {
		return pos.X, pos.Y
	}
	return 0, 0
}

// PlayerSpeed — текущая скорость игрока.
func (g *Game) PlayerSpeed() float64 {
	if p, ok := g.ECS.Pilots[g.PlayerID]; ok {
		return p.Speed
	}
	return 0
}
