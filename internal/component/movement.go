// component/movement.go
package component

// Position — центр сущности
type Position struct {
	X, Y float64
}

// Hitbox — размеры прямоугольника столкновений вокруг Position
type Hitbox struct {
	W, H float64
}

// Velocity — смещение за тик
type Velocity struct {
	DX, DY float64
}

// Patrol — горизонтальное движение с отскоком от краёв поля
type Patrol struct {
	BaseSpeed float64
	Speed     float64
	Direction float64 // +1 вправо, -1 влево
}

// Wave — синусоидальная траектория дрона
type Wave struct {
	Speed     float64
	BaseY     float64
	Amplitude float64
	Frequency float64
	Counter   int
}
