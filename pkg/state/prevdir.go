// Package state persists the single-slot previous-directory pointer used by
// the bounce pattern ("pj -").
package state

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Store is the narrow get/set interface over the previous-directory slot.
// The shell wrapper writes it immediately before each jump; this process
// only ever reads it when servicing the bounce pattern.
type Store interface {
	// Get returns the recorded path and whether one is recorded. Read
	// problems degrade to "not recorded" rather than failing the bounce.
	Get() (string, bool)
	// Set records path as the previous directory, replacing any prior value.
	Set(path string) error
}

// FileStore keeps the slot in a plain file under the per-user state
// directory. Writes are small single-value overwrites; two racing
// invocations resolve as last-writer-wins.
type FileStore struct {
	Path string
}

// NewFileStore creates a store at the well-known per-user location:
// $XDG_STATE_HOME/pj/prev_dir, falling back to ~/.local/state/pj/prev_dir.
func NewFileStore() (*FileStore, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to determine state directory")
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return &FileStore{Path: filepath.Join(dir, "pj", "prev_dir")}, nil
}

// Get reads the slot from disk.
func (s *FileStore) Get() (string, bool) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", false
	}
	path := strings.TrimSpace(string(data))
	if path == "" {
		return "", false
	}
	return path, true
}

// Set overwrites the slot on disk, creating the state directory if needed.
func (s *FileStore) Set(path string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return errors.Wrap(err, "failed to create state directory")
	}
	if err := os.WriteFile(s.Path, []byte(path+"\n"), 0644); err != nil {
		return errors.Wrap(err, "failed to write previous directory")
	}
	return nil
}

// MemoryStore is an in-process Store for tests.
type MemoryStore struct {
	path string
	set  bool
}

// Get returns the recorded value.
func (s *MemoryStore) Get() (string, bool) {
	return s.path, s.set
}

// Set records the value.
func (s *MemoryStore) Set(path string) error {
	s.path = path
	s.set = true
	return nil
}
