// internal/state/game_state.go
package state

import (
	"pixel-war/internal/app"
	"pixel-war/internal/component"
	"pixel-war/internal/config"
	"pixel-war/internal/debugserver"
	"pixel-war/internal/defs"
	"pixel-war/internal/event"
	"pixel-war/internal/input"
	"pixel-war/internal/logging"
	"pixel-war/internal/save"
	"pixel-war/internal/system"
	"pixel-war/internal/transition"
	"pixel-war/internal/ui"
	"pixel-war/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// GameState — состояние игры
type GameState struct {
	ctx      *Context
	game     *app.Game
	level    defs.LevelDefinition
	in       input.Reader
	parallax *render.Parallax
	field    *render.FieldRenderer
	hud      *ui.HUD
	log      zerolog.Logger
}

// NewGameState начинает сессию; snap != nil продолжает сохранённую игру.
func NewGameState(ctx *Context, snap *save.Snapshot) *GameState {
	level := ctx.Data.LoadLevel(config.LevelFile)
	g := &GameState{
		ctx:      ctx,
		level:    level,
		in:       input.Empty,
		parallax: render.NewParallax(ctx.Sprites, level.Background),
		field:    render.NewFieldRenderer(ctx.Sprites),
		hud:      ui.NewHUD(),
		log:      logging.For("play"),
	}
	g.start(snap)
	return g
}

func (g *GameState) start(snap *save.Snapshot) {
	events := event.NewDispatcher()
	g.ctx.Quests.Subscribe(events)
	events.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		g.log.Debug().Str("event", string(e.Type)).Interface("data", e.Data).Msg("game event")
	}))
	g.game = app.NewGame(app.Options{
		Settings:   g.ctx.Settings,
		Seed:       g.ctx.Seed,
		Structures: structureSpecs(g.level.Structures, g.log),
		Feedback:   g.ctx.Sound,
		Events:     events,
		Snapshot:   snap,
	})
}

// structureSpecs переводит данные уровня в сооружения; неизвестные виды пропускаются.
func structureSpecs(placements []defs.StructurePlacement, log zerolog.Logger) []system.StructureSpec {
	specs := make([]system.StructureSpec, 0, len(placements))
	for _, p := range placements {
		kind, ok := component.KindFromString(p.Kind)
		if !ok {
			log.Warn().Str("kind", p.Kind).Msg("unknown structure kind skipped")
			continue
		}
		specs = append(specs, system.StructureSpec{Kind: kind, X: p.X, Y: p.Y})
	}
	if len(specs) == 0 {
		return nil
	}
	return specs
}

// Game — текущая игровая сессия.
func (g *GameState) Game() *app.Game { return g.game }

func (g *GameState) Enter() {
	g.ctx.Sound.PlayMusic()
}

func (g *GameState) Exit() {
	g.ctx.Sound.StopMusic()
}

// Resume вызывается, когда оверлей снят. После проигрыша начинается новая сессия,
// но только когда ToGameOver уже забран из очереди.
func (g *GameState) Resume() {
	if !g.game.Over() || g.game.Requests().Len() > 0 {
		return
	}
	g.log.Info().Int("score", g.game.Score).Msg("restarting after game over")
	g.start(nil)
	g.ctx.Sound.PlayMusic()
}

func (g *GameState) Requests() *transition.Queue { return g.game.Requests() }

func (g *GameState) ProcessInput(in input.Reader) {
	g.in = in
	g.game.HandleInput(in)
}

func (g *GameState) Update(deltaTime float64) {
	g.game.Update(g.in, deltaTime)
}

// Методы interfaces.PlayHandle для оверлеев.

func (g *GameState) UpgradePlayerSpeed(delta float64)      { g.game.UpgradePlayerSpeed(delta) }
func (g *GameState) UpgradeProjectileSpeed(delta float64)  { g.game.UpgradeProjectileSpeed(delta) }
func (g *GameState) UpgradeShieldDuration(deltaMs float64) { g.game.UpgradeShieldDuration(deltaMs) }
func (g *GameState) AddLife()                              { g.game.AddLife() }
func (g *GameState) Snapshot() save.Snapshot               { return g.game.Snapshot() }

func (g *GameState) Draw(screen *ebiten.Image) {
	pal := render.PaletteFor(g.ctx.Settings.ArtTheme)
	g.parallax.Draw(screen, g.game.ParallaxFar, g.game.ParallaxNear, pal)
	g.field.Draw(screen, g.game.ECS, pal)

	px, py := g.game.PlayerPosition()
	if g.game.ShieldActive {
		ui.DrawShield(screen, px, py)
	}
	ecs := g.game.ECS
	for _, id := range ecs.Group(component.GroupEnemies) {
		if ecs.Kinds[id] != component.KindBoss {
			continue
		}
		h, ok := ecs.Healths[id]
		l, t, r, _, hasRect := ecs.Rect(id)
		if ok && hasRect {
			ui.DrawBossBar(screen, l, t, r-l, h.Value, h.Max)
		}
	}

	g.hud.Draw(screen, ui.HUDData{
		Score:        g.game.Score,
		Level:        g.game.Level,
		Lives:        g.game.Lives,
		ShieldActive: g.game.ShieldActive,
		ShieldLeftMs: g.game.ShieldTimerMs,
	})
	if g.game.ShowDebug {
		ui.DrawDebug(screen, ebiten.ActualFPS(), px, py)
	}
}

func (g *GameState) fillDebug(s *debugserver.Snapshot) {
	s.Tick = g.game.Ticks
	s.Score = g.game.Score
	s.Level = g.game.Level
	s.Lives = g.game.Lives
	s.ShieldActive = g.game.ShieldActive
	s.PlayerX, s.PlayerY = g.game.PlayerPosition()
	s.Enemies = g.game.ECS.Count(component.GroupEnemies)
	s.Projectiles = g.game.ECS.Count(component.GroupProjectiles)
	s.Drones = g.game.ECS.Count(component.GroupDrones)
}
