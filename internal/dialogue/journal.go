// internal/dialogue/journal.go
package dialogue

import "strings"

// Journal — журнал диалогов, только дописывается.
type Journal struct {
	entries []string
}

func NewJournal() *Journal {
	return &Journal{}
}

// Append добавляет запись; пустые строки пропускаются.
func (j *Journal) Append(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	j.entries = append(j.entries, text)
}

// Entries возвращает копию записей.
func (j *Journal) Entries() []string {
	return append([]string(nil), j.entries...)
}

func (j *Journal) Len() int { return len(j.entries) }

func (j *Journal) String() string {
	if len(j.entries) == 0 {
		return "No dialogue recorded."
	}
	return strings.Join(j.entries, "\n\n")
}
