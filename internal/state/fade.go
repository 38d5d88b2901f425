// internal/state/fade.go
package state

import "pixel-war/internal/utils"

// Fade — затемнение и проявление экрана при смене сессии.
// Пока оно идёт, сцены не получают ввод и не обновляются.
type Fade struct {
	durationMs float64
	elapsedMs  float64
	active     bool
}

// Start запускает эффект длительностью durationMs (половина на затемнение).
func (f *Fade) Start(durationMs float64) {
	f.durationMs = durationMs
	f.elapsedMs = 0
	f.active = durationMs > 0
}

func (f *Fade) Update(dtMs float64) {
	if !f.active {
		return
	}
	f.elapsedMs += dtMs
	if f.elapsedMs >= f.durationMs {
		f.active = false
	}
}

func (f *Fade) Active() bool { return f.active }

// Alpha — непрозрачность чёрного слоя: 0→1 в первой половине, 1→0 во второй.
func (f *Fade) Alpha() float64 {
	if !f.active {
		return 0
	}
	half := f.durationMs / 2
	if f.elapsedMs < half {
		return utils.Lerp(0, 1, f.elapsedMs/half)
	}
	return utils.Lerp(1, 0, (f.elapsedMs-half)/half)
}
