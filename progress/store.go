package progress

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/lixenwraith/xochi/storage"
)

// SaveKey is the backend key holding the serialized State
const SaveKey = "xochi-save"

// Store loads and persists State through a storage backend
type Store struct {
	backend storage.Backend
	logger  *slog.Logger
}

// NewStore wraps backend; a nil logger uses slog.Default
func NewStore(backend storage.Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: backend, logger: logger}
}

// Load returns the saved state, or defaults for d when the save is absent or unreadable
// Never fails: a corrupt save is logged and replaced by defaults
func (s *Store) Load(d Difficulty) *State {
	data, ok, err := s.backend.Get(SaveKey)
	if err != nil {
		s.logger.Warn("save read failed, using defaults", "error", err)
		return New(d)
	}
	if !ok {
		return New(d)
	}

	st := New(d)
	if err := json.Unmarshal(data, st); err != nil {
		s.logger.Warn("save corrupt, using defaults", "error", err, "bytes", len(data))
		return New(d)
	}
	st.Normalize()
	return st
}

// Save persists st
func (s *Store) Save(st *State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if err := s.backend.Set(SaveKey, data); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// SaveQuiet persists st and logs instead of returning failures
func (s *Store) SaveQuiet(st *State) {
	if err := s.Save(st); err != nil {
		s.logger.Warn("save failed", "error", err)
	}
}

// Clear removes the save
func (s *Store) Clear() error {
	if err := s.backend.Delete(SaveKey); err != nil {
		return fmt.Errorf("clear save: %w", err)
	}
	return nil
}
