// internal/quest/quest.go
package quest

import (
	"fmt"
	"strings"

	"pixel-war/internal/defs"
)

// Status — состояние квеста. Переход Active -> Completed односторонний.
type Status int

const (
	Active Status = iota
	Completed
)

func (s Status) String() string {
	if s == Completed {
		return "Completed"
	}
	return "Active"
}

// Objective — счётная цель квеста.
type Objective struct {
	Description string
	Goal        int
	Progress    int
	Event       string
}

// Done — цель достигнута.
func (o *Objective) Done() bool { return o.Progress >= o.Goal }

// Quest — квест с целями и наградой.
type Quest struct {
	ID            string
	Description   string
	Objectives    []*Objective
	Rewards       defs.RewardDefinition
	Prerequisites []string
	Status        Status
}

// New создаёт активный квест без целей.
func New(id, description string, rewards defs.RewardDefinition) *Quest {
	return &Quest{ID: id, Description: description, Rewards: rewards}
}

// FromDefinition строит квест из данных.
func FromDefinition(def defs.QuestDefinition) *Quest {
	q := New(def.ID, def.Description, def.Rewards)
	q.Prerequisites = append([]string(nil), def.Prerequisites...)
	for _, o := range def.Objectives {
		q.AddObjective(o.Description, o.Goal, o.Event)
	}
	return q
}

// AddObjective добавляет цель. Цель меньше 1 считается равной 1.
func (q *Quest) AddObjective(description string, goal int, event string) {
	if goal < 1 {
		goal = 1
	}
	q.Objectives = append(q.Objectives, &Objective{Description: description, Goal: goal, Event: event})
}

// UpdateObjective продвигает цель i на amount (не выше Goal).
// Возвращает true, если квест только что завершился.
func (q *Quest) UpdateObjective(i, amount int) bool {
	if q.Status == Completed || i < 0 || i >= len(q.Objectives) || amount <= 0 {
		return false
	}
	o := q.Objectives[i]
	o.Progress += amount
	if o.Progress > o.Goal {
		o.Progress = o.Goal
	}
	return q.CheckCompletion()
}

// CheckCompletion переводит квест в Completed, когда все цели выполнены.
func (q *Quest) CheckCompletion() bool {
	if q.Status == Completed || len(q.Objectives) == 0 {
		return false
	}
	for _, o := range q.Objectives {
		if !o.Done() {
			return false
		}
	}
	q.Status = Completed
	return true
}

func (q *Quest) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]", q.Description, q.Status)
	for _, o := range q.Objectives {
		fmt.Fprintf(&b, "\n  - %s: %d/%d", o.Description, o.Progress, o.Goal)
	}
	return b.String()
}
