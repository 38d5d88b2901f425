// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"pixel-war/internal/assets"
	"pixel-war/internal/audio"
	"pixel-war/internal/config"
	"pixel-war/internal/debugserver"
	"pixel-war/internal/logging"
	"pixel-war/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	dispatcher     *state.Dispatcher
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	if a.dispatcher.Tick(keyboard{}, deltaTime) {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.dispatcher.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings(config.SettingsFile)
	logging.Setup(logging.Console(), settings.LogLevel)
	log := logging.For("main")
	if err != nil {
		log.Warn().Err(err).Msg("using default settings")
	}

	ctx := state.NewContext(settings, ".")
	ctx.SettingsPath = config.SettingsFile
	ctx.Sprites = assets.NewImageManager(settings.AssetDir)

	sound := audio.NewSoundManager(settings.Volume)
	if err := sound.Initialize(); err == nil {
		ctx.Sound = sound
	}
	log.Info().Bool("audio", sound.Enabled()).Float64("volume", sound.Volume()).Msg("sound initialized")
	defer sound.Cleanup()

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if settings.DebugAddr != "" {
		ctx.Debug = debugserver.NewPublisher()
		debugserver.New(settings.DebugAddr, ctx.Debug).Start(runCtx)
	}

	// меню внизу, вступительная катсцена поверх
	sm := state.NewStateMachine(state.NewMenuState(ctx))
	sm.Push(state.NewCutsceneState(ctx, config.IntroCutscene))

	app := &AppGame{
		stateMachine:   sm,
		dispatcher:     state.NewDispatcher(sm, ctx),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game stopped")
		cancel()
		sound.Cleanup()
		os.Exit(1)
	}
	log.Info().Msg("bye")
}
