// internal/audio/sound_manager.go
package audio

import (
	"math"
	"sync"
	"time"

	"pixel-war/internal/logging"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	sampleRate  = beep.SampleRate(44100)
	hitDuration = 150 * time.Millisecond
)

// SoundManager воспроизводит музыку и эффекты через beep.
// Если устройство недоступно, работает молча.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	volume      float64
	initialized bool
	log         zerolog.Logger
}

// NewSoundManager создает менеджер с громкостью volume (0..1).
func NewSoundManager(volume float64) *SoundManager {
	sm := &SoundManager{
		mixer: &beep.Mixer{},
		log:   logging.For("audio"),
	}
	sm.master = &effects.Volume{Streamer: sm.mixer, Base: 2}
	sm.applyVolume(volume)
	return sm
}

// Initialize открывает устройство вывода. Повторный вызов ничего не делает.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		sm.log.Warn().Err(err).Msg("audio device unavailable, running silent")
		return err
	}
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Enabled — устройство открыто.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayMusic запускает фоновую петлю, если она ещё не играет.
func (sm *SoundManager) PlayMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil && !sm.music.Paused {
		return
	}
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, NewMusicGenerator(sampleRate))}
	speaker.Lock()
	sm.music = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic останавливает фоновую петлю.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.music.Paused = true
	sm.music.Streamer = nil
	sm.music = nil
}

// PlayHit проигрывает короткий сигнал попадания.
func (sm *SoundManager) PlayHit() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := beep.Take(sampleRate.N(hitDuration), NewHitGenerator(sampleRate, hitDuration))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// SetVolume задаёт общую громкость 0..1.
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.applyVolume(v)
}

// Volume — текущая громкость 0..1.
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Cleanup останавливает все звуки.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	sm.music = nil
	sm.initialized = false
}

func (sm *SoundManager) applyVolume(v float64) {
	v = math.Max(0, math.Min(1, v))
	sm.volume = v
	if v <= 0 {
		sm.master.Silent = true
		sm.master.Volume = 0
		return
	}
	sm.master.Silent = false
	sm.master.Volume = math.Log2(v)
}
