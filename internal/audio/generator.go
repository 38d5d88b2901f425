package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// melody — ноты фоновой петли (Гц), по одной на шаг.
var melody = []float64{220.00, 261.63, 329.63, 392.00, 349.23, 293.66, 261.63, 196.00}

const melodyStep = 250 * time.Millisecond

// MusicGenerator — бесконечная петля простого арпеджио.
type MusicGenerator struct {
	sr   beep.SampleRate
	pos  int
	step int
}

func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{sr: sr, step: sr.N(melodyStep)}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := melody[(g.pos/g.step)%len(melody)]
		inStep := float64(g.pos%g.step) / float64(g.step)
		t := float64(g.pos) / float64(g.sr)

		// мягкая атака и спад внутри шага
		env := math.Min(inStep/0.05, 1) * (1 - inStep*0.7)
		sample := 0.12 * env * (math.Sin(2*math.Pi*note*t) + 0.3*math.Sin(2*math.Pi*note*2*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error { return nil }

// HitGenerator — короткий нисходящий сигнал попадания.
type HitGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
}

func NewHitGenerator(sr beep.SampleRate, d time.Duration) *HitGenerator {
	return &HitGenerator{sr: sr, total: sr.N(d)}
}

func (g *HitGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.total)
		freq := 600 - 450*progress
		t := float64(g.pos) / float64(g.sr)
		sample := 0.3 * (1 - progress) * math.Copysign(1, math.Sin(2*math.Pi*freq*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HitGenerator) Err() error { return nil }
