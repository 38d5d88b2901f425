// internal/save/highscore.go
package save

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// HighScores хранит рекорд в текстовом файле.
type HighScores struct {
	path string
}

func NewHighScores(path string) *HighScores {
	return &HighScores{path: path}
}

// Load возвращает рекорд; при любой ошибке 0.
func (h *HighScores) Load() int {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Save перезаписывает рекорд.
func (h *HighScores) Save(score int) error {
	if err := os.WriteFile(h.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("failed to write high score: %w", err)
	}
	return nil
}

// Submit сохраняет score, если он больше рекорда. Возвращает актуальный рекорд.
func (h *HighScores) Submit(score int) (int, error) {
	best := h.Load()
	if score <= best {
		return best, nil
	}
	return score, h.Save(score)
}

// Reset обнуляет рекорд.
func (h *HighScores) Reset() error {
	return h.Save(0)
}
