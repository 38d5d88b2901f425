package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	s := NewSnapshot().Hold(KeyLeft).Press(KeySpace)

	assert.True(t, s.Pressed(KeyLeft))
	assert.False(t, s.JustPressed(KeyLeft))
	assert.True(t, s.Pressed(KeySpace))
	assert.True(t, s.JustPressed(KeySpace))
	assert.True(t, s.AnyJustPressed())

	s.Release(KeyLeft)
	assert.False(t, s.Pressed(KeyLeft))
	assert.True(t, s.JustReleased(KeyLeft))
}

func TestEmptyReader(t *testing.T) {
	assert.False(t, Empty.AnyJustPressed())
	assert.False(t, Empty.Pressed(KeyUp))
}

func TestAllKeysCoversEnum(t *testing.T) {
	keys := AllKeys()
	assert.Len(t, keys, int(keyCount))
	assert.Equal(t, KeyUp, keys[0])
	assert.Equal(t, Key6, keys[len(keys)-1])
}
