package appstate

import (
	"sync"
	"time"
)

// Store owns a State and applies actions to it one at a time.
type Store struct {
	mu    sync.Mutex
	state State
	now   func() time.Time
}

type StoreOption func(*Store)

// WithClock replaces time.Now as the source of timestamps stamped by actions.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a Store that takes ownership of initial.
func NewStore(initial State, opts ...StoreOption) *Store {
	s := &Store{
		mu:    sync.Mutex{},
		state: initial,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies a and returns a snapshot of the resulting state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a, s.now())
	return s.state.Clone()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}
