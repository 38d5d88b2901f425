// internal/transition/transition.go
package transition

import "pixel-war/internal/save"

// Kind — вид запроса на смену сцены.
type Kind int

const (
	None Kind = iota
	Quit
	ToPlay
	ToPause
	ToSettings
	ToUpgrade
	ToGameOver
	ToMenu
	ToDialogue
	ToPutinCutscene
	Back
	ToInventory
	ToQuestJournal
	ToDialogueJournal
	ToSkillTree
	ToQuestOffer
	ToCutscene
	ToElder
)

var kindNames = map[Kind]string{
	None:              "none",
	Quit:              "quit",
	ToPlay:            "go-to-play",
	ToPause:           "go-to-pause",
	ToSettings:        "go-to-settings",
	ToUpgrade:         "go-to-upgrade",
	ToGameOver:        "go-to-gameover",
	ToMenu:            "go-to-menu",
	ToDialogue:        "go-to-dialogue",
	ToPutinCutscene:   "go-to-putin-cutscene",
	Back:              "back",
	ToInventory:       "go-to-inventory",
	ToQuestJournal:    "go-to-quest-journal",
	ToDialogueJournal: "go-to-dialogue-journal",
	ToSkillTree:       "go-to-skill-tree",
	ToQuestOffer:      "go-to-quest-offer",
	ToCutscene:        "go-to-cutscene",
	ToElder:           "go-to-elder",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Request — запрос сцены к диспетчеру.
type Request struct {
	Kind Kind
	// Score — итоговый счёт для ToGameOver.
	Score int
	// Snapshot — сохранение для ToPlay из меню.
	Snapshot *save.Snapshot
}

// Queue — очередь запросов одной сцены. Сцена пишет, диспетчер читает.
type Queue struct {
	pending []Request
}

// Post добавляет запрос. None игнорируется.
func (q *Queue) Post(r Request) {
	if r.Kind == None {
		return
	}
	q.pending = append(q.pending, r)
}

// Request — короткая форма Post для запросов без данных.
func (q *Queue) Request(k Kind) {
	q.Post(Request{Kind: k})
}

// Take извлекает следующий запрос. Quit обгоняет остальные.
func (q *Queue) Take() (Request, bool) {
	if len(q.pending) == 0 {
		return Request{}, false
	}
	for i, r := range q.pending {
		if r.Kind == Quit {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return r, true
		}
	}
	r := q.pending[0]
	q.pending = q.pending[1:]
	return r, true
}

// Has сообщает, ожидает ли запрос данного вида.
func (q *Queue) Has(k Kind) bool {
	for _, r := range q.pending {
		if r.Kind == k {
			return true
		}
	}
	return false
}

// Len — число ожидающих запросов.
func (q *Queue) Len() int { return len(q.pending) }

// Clear отбрасывает все ожидающие запросы.
func (q *Queue) Clear() { q.pending = nil }
