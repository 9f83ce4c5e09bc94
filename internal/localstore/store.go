package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// StorageKey identifies one of the fixed local persistence slots.
type StorageKey string

const (
	KeyPromptHistory   StorageKey = "promptHistory"
	KeyUserSettings    StorageKey = "userSettings"
	KeyCustomTemplates StorageKey = "customTemplates"
)

// Store is a file-backed JSON key-value store. Each key is persisted as a
// single JSON document under the store directory and rewritten in full on
// every mutation.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open prepares the store directory and returns a Store handle.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create local store dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key StorageKey) string {
	return filepath.Join(s.dir, string(key)+".json")
}

// Get reads the value stored under key into out. It returns false when the
// key has never been written, leaving out untouched so callers keep their
// default value.
func (s *Store) Get(key StorageKey, out interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set serializes value and replaces the document stored under key. The write
// goes through a temp file and rename so a crash never leaves a torn file.
func (s *Store) Set(key StorageKey, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

// Remove deletes the document stored under key. Removing an absent key is
// not an error.
func (s *Store) Remove(key StorageKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
