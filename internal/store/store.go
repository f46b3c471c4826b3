package store

import "sync"

// Store serializes event application over the shared state. Reads return the
// state by value; reducers copy any slice they change, so a snapshot stays
// coherent after later dispatches.
type Store struct {
	mu    sync.RWMutex
	state State
}

func New() *Store {
	return &Store{}
}

// Dispatch applies the events in order.
func (s *Store) Dispatch(events ...Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range events {
		s.state = e.apply(s.state)
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
