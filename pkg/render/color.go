// pkg/render/color.go
package render

import (
	"image/color"

	"pixel-war/internal/config"
)

// Palette — цвета поля для выбранной темы.
type Palette struct {
	Background color.RGBA
	FarLayer   color.RGBA
	NearLayer  color.RGBA
	Tint       color.RGBA // множитель для спрайтов
}

var defaultPalette = Palette{
	Background: config.BackgroundColor,
	FarLayer:   color.RGBA{40, 50, 90, 255},
	NearLayer:  color.RGBA{60, 80, 60, 255},
	Tint:       color.RGBA{255, 255, 255, 255},
}

// PaletteFor возвращает палитру темы; тёмная — затемнённая основная.
func PaletteFor(theme config.ArtTheme) Palette {
	if theme != config.ThemeDark {
		return defaultPalette
	}
	return Palette{
		Background: DarkenColor(defaultPalette.Background),
		FarLayer:   DarkenColor(defaultPalette.FarLayer),
		NearLayer:  DarkenColor(defaultPalette.NearLayer),
		Tint:       color.RGBA{170, 170, 190, 255},
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
