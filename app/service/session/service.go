package session

import (
	"sync"

	"github.com/samber/do"
)

// Service is the per-user session store. Sessions are created lazily, never
// evicted, and a single RWMutex guards the map: concurrent turns of the same
// user are last-writer-wins.
type Service struct {
	mu     sync.RWMutex
	states map[int64]State
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		states: make(map[int64]State),
	}, nil
}

// Get returns a copy of the user's state, zero-valued for unknown users.
func (s *Service) Get(userID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.states[userID]
}

func (s *Service) Save(userID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[userID] = state
}

func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.states)
}
