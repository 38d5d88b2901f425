package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoundManagerWithoutDevice(t *testing.T) {
	sm := NewSoundManager(0.5)

	assert.NotPanics(t, func() {
		sm.PlayMusic()
		sm.PlayHit()
		sm.StopMusic()
		sm.SetVolume(0.8)
		sm.Cleanup()
	})
	assert.False(t, sm.Enabled())
	assert.InDelta(t, 0.8, sm.Volume(), 1e-9)
}

func TestSetVolumeClamps(t *testing.T) {
	sm := NewSoundManager(0.5)
	assert.InDelta(t, -1.0, sm.master.Volume, 1e-9)

	sm.SetVolume(1.7)
	assert.Equal(t, 1.0, sm.Volume())
	assert.False(t, sm.master.Silent)

	sm.SetVolume(-0.2)
	assert.Equal(t, 0.0, sm.Volume())
	assert.True(t, sm.master.Silent)
}

func TestGeneratorsStayInRange(t *testing.T) {
	buf := make([][2]float64, 4096)

	n, ok := NewMusicGenerator(sampleRate).Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, len(buf), n)
	for _, s := range buf {
		assert.LessOrEqual(t, math.Abs(s[0]), 1.0)
		assert.Equal(t, s[0], s[1])
	}

	n, ok = NewHitGenerator(sampleRate, hitDuration).Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, len(buf), n)
	for _, s := range buf {
		assert.LessOrEqual(t, math.Abs(s[0]), 0.3)
	}
}

func TestSilentPlayer(t *testing.T) {
	assert.NotPanics(t, func() {
		Silent.PlayMusic()
		Silent.PlayHit()
		Silent.SetVolume(1)
		Silent.StopMusic()
	})
}
