// internal/audio/player.go
package audio

// Player — звук игры: фоновая музыка и отклик на попадание.
type Player interface {
	PlayMusic()
	StopMusic()
	PlayHit()
	SetVolume(v float64)
}

type silent struct{}

func (silent) PlayMusic()        {}
func (silent) StopMusic()        {}
func (silent) PlayHit()          {}
func (silent) SetVolume(float64) {}

// Silent — Player без звука.
var Silent Player = silent{}
