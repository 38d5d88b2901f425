// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки: спрайт или цветной прямоугольник
type Renderable struct {
	Sprite string // путь относительно каталога ассетов, пусто — без спрайта
	Frames int    // >1 — горизонтальная полоса кадров, кадр выбирается по Lifetime
	Color  color.RGBA
}
