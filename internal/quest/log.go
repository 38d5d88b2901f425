// internal/quest/log.go
package quest

import (
	"strings"

	"pixel-war/internal/event"
	"pixel-war/internal/hero"
	"pixel-war/internal/logging"

	"github.com/rs/zerolog"
)

// eventObjectives связывает игровые события с именами целей в данных.
var eventObjectives = map[event.EventType]string{
	event.EnemyKilled:      "enemy_killed",
	event.BossKilled:       "boss_killed",
	event.PowerUpCollected: "powerup_collected",
	event.ShieldAbsorbed:   "shield_absorbed",
}

// Log — журнал квестов героя. Переживает игровые сессии.
type Log struct {
	quests  []*Quest
	byID    map[string]*Quest
	profile *hero.Profile
	log     zerolog.Logger
}

// NewLog создаёт журнал, начисляющий награды в profile.
func NewLog(profile *hero.Profile) *Log {
	return &Log{
		byID:    make(map[string]*Quest),
		profile: profile,
		log:     logging.For("quest"),
	}
}

// Add регистрирует квест; повторный ID игнорируется.
func (l *Log) Add(q *Quest) bool {
	if q == nil {
		return false
	}
	if _, dup := l.byID[q.ID]; dup {
		return false
	}
	l.quests = append(l.quests, q)
	l.byID[q.ID] = q
	l.log.Info().Str("quest", q.ID).Msg("quest accepted")
	return true
}

// Get возвращает квест по ID.
func (l *Log) Get(id string) (*Quest, bool) {
	q, ok := l.byID[id]
	return q, ok
}

// Quests — квесты в порядке добавления.
func (l *Log) Quests() []*Quest {
	return append([]*Quest(nil), l.quests...)
}

// UpdateProgress продвигает цель и при завершении один раз начисляет награду.
func (l *Log) UpdateProgress(id string, objective, amount int) {
	q, ok := l.byID[id]
	if !ok {
		return
	}
	if q.UpdateObjective(objective, amount) {
		l.reward(q)
	}
}

// Complete принудительно завершает квест.
func (l *Log) Complete(id string) {
	q, ok := l.byID[id]
	if !ok || q.Status == Completed {
		return
	}
	for _, o := range q.Objectives {
		o.Progress = o.Goal
	}
	q.Status = Completed
	l.reward(q)
}

func (l *Log) reward(q *Quest) {
	l.log.Info().Str("quest", q.ID).Msg("quest completed")
	if l.profile == nil {
		return
	}
	if err := Apply(q.Rewards, l.profile); err != nil {
		l.log.Warn().Err(err).Str("quest", q.ID).Msg("reward partially applied")
	}
}

// OnEvent продвигает цели, привязанные к игровому событию.
func (l *Log) OnEvent(e event.Event) {
	name, ok := eventObjectives[e.Type]
	if !ok {
		return
	}
	for _, q := range l.quests {
		if q.Status == Completed {
			continue
		}
		for i, o := range q.Objectives {
			if o.Event == name {
				l.UpdateProgress(q.ID, i, 1)
			}
		}
	}
}

// Subscribe подписывает журнал на события игровой сессии.
func (l *Log) Subscribe(d *event.Dispatcher) {
	for t := range eventObjectives {
		d.Subscribe(t, l)
	}
}

func (l *Log) String() string {
	if len(l.quests) == 0 {
		return "No active quests."
	}
	parts := make([]string, 0, len(l.quests))
	for _, q := range l.quests {
		parts = append(parts, q.String())
	}
	return strings.Join(parts, "\n")
}
