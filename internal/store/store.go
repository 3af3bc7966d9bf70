// Package store persists the progression aggregate as an indented JSON
// file and appends capture audit records to a plain-text log.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"vitae/internal/logging"
	"vitae/internal/progression"
)

// Store reads and writes the persisted-state file. Saves are serialized by
// a mutex so callbacks dispatched concurrently by the host cannot
// interleave partial writes; the startup load happens before any
// concurrency exists and needs no lock.
type Store struct {
	path string
	mu   sync.Mutex
	log  logging.Logger
}

// New builds a store over path.
func New(path string, log logging.Logger) *Store {
	return &Store{path: path, log: logging.OrNop(log)}
}

// Path returns the state file location.
func (s *Store) Path() string {
	return s.path
}

// Load overwrites st with the saved aggregate, if one exists. A missing
// file leaves the defaults in place; a malformed file is logged and
// likewise leaves defaults, since in-memory state is the source of truth.
// Unknown keys from older schema versions are silently ignored.
func (s *Store) Load(st *progression.State) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		s.log.Error("load %s: %v", s.path, err)
		return nil
	}
	if err := json.Unmarshal(data, st); err != nil {
		s.log.Error("decode %s: %v", s.path, err)
		return nil
	}
	return nil
}

// Save writes the aggregate with 2-space indentation. A failed save is
// reported to the caller but never mutates in-memory state; the next
// mutation triggers a fresh attempt.
func (s *Store) Save(st *progression.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}
