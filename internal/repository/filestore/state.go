package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"vocabwidget/internal/domain"
)

// DefaultStatePath returns the default window-state file location
func DefaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "vocab-widget", "window-state.json")
}

// StateFile implements repository.WindowStateStore over a JSON file
type StateFile struct {
	path string
}

// NewStateFile creates a new window-state file store
func NewStateFile(path string) *StateFile {
	return &StateFile{path: path}
}

// Path returns the backing file
func (s *StateFile) Path() string {
	return s.path
}

// Load merges the persisted record over the defaults. A missing file is not
// an error; an unreadable or corrupt one returns the defaults together with
// an ErrPersistence error.
func (s *StateFile) Load() (domain.WindowState, error) {
	state := domain.DefaultWindowState()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("%w: read %s: %v", domain.ErrPersistence, s.path, err)
	}

	var saved domain.PersistedWindowState
	if err := json.Unmarshal(data, &saved); err != nil {
		return state, fmt.Errorf("%w: decode %s: %v", domain.ErrPersistence, s.path, err)
	}

	return domain.MergeWindowState(state, saved), nil
}

// Save writes the full state synchronously
func (s *StateFile) Save(state domain.WindowState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", domain.ErrPersistence, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: create dir: %v", domain.ErrPersistence, err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrPersistence, s.path, err)
	}

	return nil
}
