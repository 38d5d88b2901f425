// internal/debugserver/publisher.go
package debugserver

import (
	"sync/atomic"
	"time"
)

// Snapshot — состояние активной игры для отладочных клиентов.
type Snapshot struct {
	Scene        string    `json:"scene"`
	StackDepth   int       `json:"stack_depth"`
	Tick         int       `json:"tick"`
	Score        int       `json:"score"`
	Level        int       `json:"level"`
	Lives        int       `json:"lives"`
	ShieldActive bool      `json:"shield_active"`
	PlayerX      float64   `json:"player_x"`
	PlayerY      float64   `json:"player_y"`
	Enemies      int       `json:"enemies"`
	Projectiles  int       `json:"projectiles"`
	Drones       int       `json:"drones"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Publisher хранит последний снимок. Publish вызывается из игрового цикла,
// Latest — из HTTP-горутин.
type Publisher struct {
	latest atomic.Pointer[Snapshot]
}

func NewPublisher() *Publisher {
	p := &Publisher{}
	p.latest.Store(&Snapshot{})
	return p
}

func (p *Publisher) Publish(s Snapshot) {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now()
	}
	p.latest.Store(&s)
}

func (p *Publisher) Latest() Snapshot {
	return *p.latest.Load()
}
