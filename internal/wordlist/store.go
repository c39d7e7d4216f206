package wordlist

import (
	"sync"

	"github.com/bmdict/cli/internal/domain"
)

// State is the load lifecycle of a Store.
type State int

const (
	StateLoading State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "loading"
}

// Store holds the session's word list. It starts loading with an empty list
// and moves to ready exactly once, after which the list never changes.
type Store struct {
	mu      sync.RWMutex
	state   State
	entries []domain.WordEntry
	logger  domain.Logger
}

// NewStore returns a Store in StateLoading. Load failures are reported to
// logger.
func NewStore(logger domain.Logger) *Store {
	return &Store{state: StateLoading, logger: logger}
}

// Finish ends the load. On error the list stays empty and the failure is
// logged, not returned. Calls after the first are ignored.
func (s *Store) Finish(src string, entries []domain.WordEntry, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateReady {
		return
	}
	s.state = StateReady

	if err != nil {
		if s.logger != nil {
			s.logger.Error("wordlist: failed to load %s: %v", src, err)
		}
		s.entries = nil
		return
	}

	s.entries = entries
	if s.logger != nil {
		s.logger.Info("wordlist: loaded %d words from %s", len(entries), src)
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Loading reports whether the load is still in flight.
func (s *Store) Loading() bool {
	return s.State() == StateLoading
}

// InputEnabled reports whether the search box accepts input.
func (s *Store) InputEnabled() bool {
	return s.State() == StateReady
}

// Entries returns the loaded list. It is empty while loading and after a
// failed load. Callers must not modify it.
func (s *Store) Entries() []domain.WordEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}
