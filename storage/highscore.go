// Package storage persists the high score between sessions
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/circle-merge/parameter"
)

// HighScoreStore is the persistence collaborator of the score tracker
// Load never fails: an absent or unreadable value reads as 0
type HighScoreStore interface {
	Load() int
	Save(score int) error
}

// DefaultPath returns the high score file location under the user config dir
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "circle-merge", parameter.HighScoreFile), nil
}

// FileStore keeps the high score as a single decimal under a fixed YAML key
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by path; the file is created on first Save
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("high score read %s: %v", s.path, err)
		}
		return 0
	}

	doc := make(map[string]int)
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Printf("high score parse %s: %v", s.path, err)
		return 0
	}

	score := doc[parameter.HighScoreKey]
	if score < 0 {
		return 0
	}
	return score
}

// Save writes through a temp file and rename so a crash never leaves a torn file
func (s *FileStore) Save(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(map[string]int{parameter.HighScoreKey: score})
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit high score: %w", err)
	}
	return nil
}

// MemoryStore is a process-local store, used by tests and when no file is wanted
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
}

func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{score: initial}
}

func (m *MemoryStore) Load() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

func (m *MemoryStore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	m.saves++
	return nil
}

// Saves returns how many times Save was called
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
