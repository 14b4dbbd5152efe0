package memory

import (
	"context"
	"sync"

	"github.com/wollylully/storefront/internal/domains/chrome/domain"
	"github.com/wollylully/storefront/internal/domains/chrome/ports"
)

// Store keeps chrome session state in process memory. Good enough for the
// prototype deployment, where losing chrome state on restart only resets
// open panels and selections.
type Store struct {
	mu     sync.RWMutex
	states map[string]domain.SessionState
}

// NewStore creates an empty in-memory state store.
func NewStore() *Store {
	return &Store{states: map[string]domain.SessionState{}}
}

// Load returns the session's state, or the zero state for new sessions.
func (s *Store) Load(_ context.Context, sessionID string) (domain.SessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.states[sessionID]), nil
}

// Save replaces the session's state.
func (s *Store) Save(_ context.Context, sessionID string, state domain.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[sessionID] = copyState(state)
	return nil
}

func copyState(state domain.SessionState) domain.SessionState {
	out := state
	out.Panels = append(domain.Panels{}, state.Panels...)
	if state.Accordions != nil {
		out.Accordions = make(domain.Accordions, len(state.Accordions))
		for group, open := range state.Accordions {
			out.Accordions[group] = open
		}
	}
	if state.Notice != nil {
		notice := *state.Notice
		out.Notice = &notice
	}
	return out
}

var _ ports.StateStore = (*Store)(nil)
