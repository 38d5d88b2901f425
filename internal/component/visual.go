// internal/component/visual.go
package component

// Lifetime — эффект, живущий заданное число тиков (взрывы).
type Lifetime struct {
	Frame     int
	MaxFrames int
}

// Progress возвращает долю прожитого времени [0, 1].
func (l *Lifetime) Progress() float64 {
	if l.MaxFrames <= 0 {
		return 1
	}
	return float64(l.Frame) / float64(l.MaxFrames)
}
