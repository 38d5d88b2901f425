// internal/save/save.go
package save

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrNoSave — файла сохранения нет.
var ErrNoSave = errors.New("save file not found")

// Snapshot — состояние игровой сессии, достаточное для продолжения.
type Snapshot struct {
	SessionID        uuid.UUID `msgpack:"session_id"`
	SavedAt          time.Time `msgpack:"saved_at"`
	Score            int       `msgpack:"score"`
	Level            int       `msgpack:"level"`
	Lives            int       `msgpack:"lives"`
	PlayerX          float64   `msgpack:"player_x"`
	PlayerY          float64   `msgpack:"player_y"`
	PlayerSpeed      float64   `msgpack:"player_speed"`
	ProjectileSpeed  float64   `msgpack:"projectile_speed"`
	ShieldActive     bool      `msgpack:"shield_active"`
	ShieldTimerMs    float64   `msgpack:"shield_timer_ms"`
	ShieldDurationMs float64   `msgpack:"shield_duration_ms"`
}

// Store пишет и читает снимки в каталоге.
type Store struct {
	dir string
}

// NewStore создаёт хранилище; пустой dir — текущий каталог.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Save сериализует снимок. Пустой SessionID заполняется новым.
func (s *Store) Save(snap Snapshot, name string) error {
	if snap.SessionID == uuid.Nil {
		snap.SessionID = uuid.New()
	}
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now()
	}
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	return nil
}

// Load читает снимок. Отсутствующий файл — ErrNoSave.
func (s *Store) Load(name string) (Snapshot, error) {
	var snap Snapshot
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return snap, ErrNoSave
	}
	if err != nil {
		return snap, fmt.Errorf("failed to read save file: %w", err)
	}
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode save: %w", err)
	}
	return snap, nil
}

// Exists сообщает, есть ли сохранение.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}
