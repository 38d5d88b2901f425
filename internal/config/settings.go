// internal/config/settings.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ControlScheme — набор клавиш движения.
type ControlScheme string

const (
	ControlsArrows ControlScheme = "arrows"
	ControlsWASD   ControlScheme = "wasd"
)

// ArtTheme — палитра отрисовки.
type ArtTheme string

const (
	ThemeDefault ArtTheme = "default"
	ThemeDark    ArtTheme = "dark"
)

// Settings — изменяемые во время игры настройки, сохраняются в settings.yaml.
type Settings struct {
	Volume        float64       `yaml:"volume"`
	ControlScheme ControlScheme `yaml:"control_scheme"`
	ArtTheme      ArtTheme      `yaml:"art_theme"`
	BossHealth    int           `yaml:"boss_health"`
	Difficulty    string        `yaml:"difficulty"`
	DebugAddr     string        `yaml:"debug_addr"`
	LogLevel      string        `yaml:"log_level"`
	DataDir       string        `yaml:"data_dir"`
	AssetDir      string        `yaml:"asset_dir"`
	Seed          int64         `yaml:"seed"`
	HeroClass     string        `yaml:"hero_class"`
}

// DefaultSettings возвращает значения по умолчанию.
func DefaultSettings() *Settings {
	return &Settings{
		Volume:        0.5,
		ControlScheme: ControlsArrows,
		ArtTheme:      ThemeDefault,
		BossHealth:    5,
		Difficulty:    "Normal",
		DebugAddr:     "localhost:6060",
		LogLevel:      "debug",
		DataDir:       "assets/data",
		AssetDir:      "assets",
		HeroClass:     "Warrior",
	}
}

// LoadSettings читает YAML поверх значений по умолчанию.
// При ошибке возвращаются значения по умолчанию вместе с ошибкой.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.Normalize()
	return s, nil
}

// SaveSettings записывает настройки в YAML.
func SaveSettings(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Normalize приводит значения к допустимым диапазонам.
func (s *Settings) Normalize() {
	s.Volume = clamp01(s.Volume)
	if s.BossHealth < 1 {
		s.BossHealth = 1
	}
	if s.ControlScheme != ControlsWASD {
		s.ControlScheme = ControlsArrows
	}
	if s.ArtTheme != ThemeDark {
		s.ArtTheme = ThemeDefault
	}
}

// AdjustVolume меняет громкость на delta в пределах [0, 1].
func (s *Settings) AdjustVolume(delta float64) {
	s.Volume = clamp01(s.Volume + delta)
}

// ToggleControls переключает стрелки/WASD.
func (s *Settings) ToggleControls() {
	if s.ControlScheme == ControlsArrows {
		s.ControlScheme = ControlsWASD
	} else {
		s.ControlScheme = ControlsArrows
	}
}

// ToggleTheme переключает палитру.
func (s *Settings) ToggleTheme() {
	if s.ArtTheme == ThemeDefault {
		s.ArtTheme = ThemeDark
	} else {
		s.ArtTheme = ThemeDefault
	}
}

// AdjustBossHealth меняет здоровье босса, минимум 1.
func (s *Settings) AdjustBossHealth(delta int) {
	s.BossHealth += delta
	if s.BossHealth < 1 {
		s.BossHealth = 1
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
