// Package storage keeps the single durable high-score slot
package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/ini.v1"

	"github.com/lixenwraith/snakeio/constants"
)

// ErrStoreUnavailable marks a failed write after which the store keeps scores in memory only
var ErrStoreUnavailable = errors.New("high score store unavailable")

const filePermissions = 0o600

// HighScoreStore is a single numeric durable slot
type HighScoreStore interface {
	Load() int
	Save(score int) error
}

// MemoryStore keeps the score for the process lifetime
type MemoryStore struct {
	mu   sync.Mutex
	best int
}

// Load returns the stored score
func (m *MemoryStore) Load() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best
}

// Save replaces the stored score
func (m *MemoryStore) Save(score int) error {
	m.mu.Lock()
	m.best = score
	m.mu.Unlock()
	return nil
}

// INIStore persists the score under [scores] in an INI file
// Other sections of the file are preserved on write
type INIStore struct {
	mu       sync.Mutex
	path     string
	file     *ini.File
	degraded bool
	memory   MemoryStore
}

// DefaultPath returns the per-user score file location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "snakeio", "scores.ini")
}

// NewINIStore opens path; a missing or unreadable file starts from zero
func NewINIStore(path string) *INIStore {
	s := &INIStore{path: path}

	file, err := ini.Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("storage: ignoring unreadable score file %s: %v", path, err)
		}
		file = ini.Empty()
	}
	s.file = file
	s.memory.best = s.readKey()
	return s
}

// readKey parses the slot, anything but a non-negative integer reads as zero
func (s *INIStore) readKey() int {
	key := s.file.Section(constants.HighScoreSection).Key(constants.HighScoreKey)
	v, err := key.Int()
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Load returns the best score
func (s *INIStore) Load() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memory.Load()
}

// Save writes score to disk, the first failure switches the store to memory only
func (s *INIStore) Save(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.memory.Save(score)
	if s.degraded {
		return nil
	}

	s.file.Section(constants.HighScoreSection).Key(constants.HighScoreKey).SetValue(strconv.Itoa(score))
	if err := s.write(); err != nil {
		s.degraded = true
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *INIStore) write() error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := s.file.SaveTo(s.path); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.path, err)
	}
	if err := os.Chmod(s.path, filePermissions); err != nil {
		log.Printf("storage: could not set permissions for %s: %v", s.path, err)
	}
	return nil
}

// Degraded reports whether writes stopped reaching disk
func (s *INIStore) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Path returns the backing file
func (s *INIStore) Path() string {
	return s.path
}
