package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGIsDeterministicForSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Range(30, 770), b.Range(30, 770))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestRangeIsInclusive(t *testing.T) {
	rng := NewPRNGService(7)
	seenLo, seenHi := false, false
	for i := 0; i < 2000; i++ {
		v := rng.Range(1, 3)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 3)
		seenLo = seenLo || v == 1
		seenHi = seenHi || v == 3
	}
	assert.True(t, seenLo)
	assert.True(t, seenHi)
	assert.Equal(t, 5, rng.Range(5, 5))
}

func TestChanceBounds(t *testing.T) {
	rng := NewPRNGService(1)
	for i := 0; i < 100; i++ {
		assert.False(t, rng.Chance(0))
		assert.True(t, rng.Chance(1))
	}
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(0, 0, 10, 10, 5, 5, 15, 15))
	assert.False(t, Overlaps(0, 0, 10, 10, 10, 0, 20, 10), "touching edges")
	assert.False(t, Overlaps(0, 0, 10, 10, 30, 30, 40, 40))
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 25.0, Clamp(10, 25, 775))
	assert.Equal(t, 775.0, Clamp(900, 25, 775))
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
}
