// Package save persists the high score between sessions.
package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store is a persistence slot for the high score.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

type record struct {
	HighScore int `yaml:"high_score"`
}

// FileStore keeps the high score in a small yaml file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath places the save file under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("save: locate config dir: %w", err)
	}
	return filepath.Join(dir, "climber", "highscore.yaml"), nil
}

func (s *FileStore) Path() string {
	return s.path
}

// Load returns 0 when no save file exists yet.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("save: read %s: %w", s.path, err)
	}
	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("save: parse %s: %w", s.path, err)
	}
	if rec.HighScore < 0 {
		return 0, nil
	}
	return rec.HighScore, nil
}

// Save writes through a temp file so a crash never leaves a torn record.
func (s *FileStore) Save(score int) error {
	data, err := yaml.Marshal(record{HighScore: score})
	if err != nil {
		return fmt.Errorf("save: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("save: create dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("save: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("save: replace %s: %w", s.path, err)
	}
	return nil
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
}

func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *MemoryStore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	m.saves++
	return nil
}

// Saves reports how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
