package memory

import (
	"context"
	"sync"

	"github.com/wollylully/storefront/internal/domains/cart/domain"
	"github.com/wollylully/storefront/internal/domains/cart/ports"
)

var _ ports.Store = (*Store)(nil)

// Store is an in-memory cart store used when no database is configured.
type Store struct {
	mu    sync.RWMutex
	slots map[string]domain.Cart
}

func NewStore() *Store {
	return &Store{slots: map[string]domain.Cart{}}
}

func (s *Store) Load(_ context.Context, key string) (domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(domain.Cart{}, s.slots[key]...), nil
}

func (s *Store) Save(_ context.Context, key string, cart domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = append(domain.Cart{}, cart...)
	return nil
}
