package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("volume: [oops"), 0o644))

	s, err := LoadSettings(path)
	require.Error(t, err)
	assert.Equal(t, 0.5, s.Volume)
	assert.Equal(t, 5, s.BossHealth)
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := DefaultSettings()
	s.ToggleControls()
	s.ToggleTheme()
	s.AdjustBossHealth(2)
	require.NoError(t, SaveSettings(path, s))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, ControlsWASD, loaded.ControlScheme)
	assert.Equal(t, ThemeDark, loaded.ArtTheme)
	assert.Equal(t, 7, loaded.BossHealth)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boss_health: 9\n"), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 9, s.BossHealth)
	assert.Equal(t, 0.5, s.Volume)
	assert.Equal(t, ControlsArrows, s.ControlScheme)
}

func TestAdjustments(t *testing.T) {
	s := DefaultSettings()
	for i := 0; i < 10; i++ {
		s.AdjustVolume(VolumeStep)
	}
	assert.Equal(t, 1.0, s.Volume)
	for i := 0; i < 20; i++ {
		s.AdjustVolume(-VolumeStep)
	}
	assert.Equal(t, 0.0, s.Volume)

	for i := 0; i < 10; i++ {
		s.AdjustBossHealth(-1)
	}
	assert.Equal(t, 1, s.BossHealth)

	s.ToggleControls()
	s.ToggleControls()
	assert.Equal(t, ControlsArrows, s.ControlScheme)
}

func TestNormalizeClampsOutOfRange(t *testing.T) {
	s := &Settings{Volume: 3, BossHealth: -4, ControlScheme: "gamepad", ArtTheme: "neon"}
	s.Normalize()
	assert.Equal(t, 1.0, s.Volume)
	assert.Equal(t, 1, s.BossHealth)
	assert.Equal(t, ControlsArrows, s.ControlScheme)
	assert.Equal(t, ThemeDefault, s.ArtTheme)
}
