// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Overlaps — строгое пересечение прямоугольников; касание краями не считается.
func Overlaps(l1, t1, r1, b1, l2, t2, r2, b2 float64) bool {
	return l1 < r2 && r1 > l2 && t1 < b2 && b1 > t2
}
