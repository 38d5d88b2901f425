// internal/state/context.go
package state

import (
	"fmt"
	"path/filepath"
	"strings"

	"pixel-war/internal/audio"
	"pixel-war/internal/config"
	"pixel-war/internal/debugserver"
	"pixel-war/internal/defs"
	"pixel-war/internal/dialogue"
	"pixel-war/internal/hero"
	"pixel-war/internal/quest"
	"pixel-war/internal/save"
	"pixel-war/pkg/render"
)

// Context — всё, что сцены получают явно вместо глобальных переменных.
type Context struct {
	Settings     *config.Settings
	SettingsPath string
	Data         *defs.Provider
	Sprites      render.Sprites // nil — только цветные заглушки
	Sound        audio.Player
	Journal      *dialogue.Journal
	Hero         *hero.Profile
	Quests       *quest.Log
	Saves        *save.Store
	Scores       *save.HighScores
	Debug        *debugserver.Publisher // nil — отладка выключена
	Seed         int64                  // 0 — случайный
}

// NewContext создаёт контекст с настройками s; файлы лежат в dir.
func NewContext(s *config.Settings, dir string) *Context {
	if s == nil {
		s = config.DefaultSettings()
	}
	profile := hero.NewProfile(s.HeroClass)
	return &Context{
		Settings: s,
		Data:     defs.NewProvider(s.DataDir),
		Sound:    audio.Silent,
		Journal:  dialogue.NewJournal(),
		Hero:     profile,
		Quests:   quest.NewLog(profile),
		Saves:    save.NewStore(dir),
		Scores:   save.NewHighScores(filepath.Join(dir, config.HighScoreFile)),
		Seed:     s.Seed,
	}
}

// nameOf — короткое имя сцены для логов.
func nameOf(s State) string {
	name := fmt.Sprintf("%T", s)
	name = strings.TrimPrefix(name, "*state.")
	return strings.TrimSuffix(name, "State")
}
