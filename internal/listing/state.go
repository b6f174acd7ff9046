package listing

import (
	"context"
	"sync"

	"go-gin-event-portal/internal/model"
)

// ScreenState is what a listing screen remembers between fetches.
type ScreenState struct {
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
	TotalPages int                  `json:"totalPages"`
	Criteria   model.FilterCriteria `json:"criteria"`
}

// StateStore keeps one ScreenState per screen and orders the fetches made for it.
type StateStore interface {
	// Load returns the stored state; ok is false when the screen has none yet.
	Load(ctx context.Context, screen string) (state ScreenState, ok bool, err error)
	// Begin reserves the next fetch sequence number of the screen.
	Begin(ctx context.Context, screen string) (int64, error)
	// Commit stores state only if seq is still the newest sequence of the
	// screen. It reports false when a later fetch has begun.
	Commit(ctx context.Context, screen string, seq int64, state ScreenState) (bool, error)
	// Purge forgets the saved state of every screen. Sequence numbers are
	// not reset, so fetches begun before the purge stay superseded.
	Purge(ctx context.Context) error
}

type memoryEntry struct {
	state ScreenState
	saved bool
	seq   int64
}

type MemoryStateStore struct {
	mu      sync.Mutex
	screens map[string]*memoryEntry
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{screens: make(map[string]*memoryEntry)}
}

func (s *MemoryStateStore) entry(screen string) *memoryEntry {
	e, ok := s.screens[screen]
	if !ok {
		e = &memoryEntry{}
		s.screens[screen] = e
	}
	return e
}

func (s *MemoryStateStore) Load(ctx context.Context, screen string) (ScreenState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.screens[screen]
	if !ok || !e.saved {
		return ScreenState{}, false, nil
	}
	return e.state, true, nil
}

func (s *MemoryStateStore) Begin(ctx context.Context, screen string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(screen)
	e.seq++
	return e.seq, nil
}

func (s *MemoryStateStore) Commit(ctx context.Context, screen string, seq int64, state ScreenState) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(screen)
	if e.seq != seq {
		return false, nil
	}
	e.state = state
	e.saved = true
	return true, nil
}

// Purge forgets the saved state of every screen. Sequence numbers keep
// counting so a fetch begun before the purge can no longer commit.
func (s *MemoryStateStore) Purge(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.screens {
		e.state = ScreenState{}
		e.saved = false
	}
	return nil
}
