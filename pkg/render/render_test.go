package render

import (
	"image/color"
	"testing"

	"pixel-war/internal/component"
	"pixel-war/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestPaletteForTheme(t *testing.T) {
	assert.Equal(t, defaultPalette, PaletteFor(config.ThemeDefault))
	dark := PaletteFor(config.ThemeDark)
	assert.Equal(t, DarkenColor(defaultPalette.Background), dark.Background)
	assert.Less(t, dark.Tint.R, defaultPalette.Tint.R)
}

func TestTileOffsets(t *testing.T) {
	assert.Equal(t, [2]float64{0, 800}, tileOffsets(0))
	assert.Equal(t, [2]float64{-300, 500}, tileOffsets(300))
	assert.Equal(t, [2]float64{-100, 700}, tileOffsets(900))
}

func TestScaleAlpha(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, c, scaleAlpha(c, 1))
	assert.Equal(t, color.RGBA{100, 50, 25, 127}, scaleAlpha(c, 0.5))
	assert.Equal(t, color.RGBA{}, scaleAlpha(c, -1))
}

func TestDrawOrderCoversEveryGroup(t *testing.T) {
	seen := map[component.Group]bool{}
	for _, g := range DrawOrder {
		seen[g] = true
	}
	assert.Len(t, seen, int(component.GroupCount))
	assert.Equal(t, component.GroupStructures, DrawOrder[0])
	assert.Equal(t, component.GroupDrones, DrawOrder[len(DrawOrder)-1])
}

func TestFrameIndex(t *testing.T) {
	assert.Equal(t, 0, frameIndex(0, 8))
	assert.Equal(t, 4, frameIndex(0.5, 8))
	assert.Equal(t, 7, frameIndex(1, 8))
	assert.Equal(t, 0, frameIndex(-0.2, 8))
}
