package application

import (
	"context"

	"github.com/wollylully/storefront/internal/domains/cart/application/types"
	"github.com/wollylully/storefront/internal/domains/cart/domain"
	"github.com/wollylully/storefront/internal/domains/cart/ports"
)

// Service orchestrates the cart bounded context use cases. The store is the
// single source of truth: every operation loads fresh, mutates through the
// pure domain functions, and persists the whole list back.
type Service struct {
	store ports.Store
}

// NewService wires the cart service with its persistence dependency.
func NewService(store ports.Store) *Service {
	return &Service{store: store}
}

// Drawer rebuilds the cart drawer projection from current state.
func (s *Service) Drawer(ctx context.Context, cartKey string) (*types.DrawerView, error) {
	cart, err := s.store.Load(ctx, cartKey)
	if err != nil {
		return nil, err
	}
	return types.BuildDrawer(cart), nil
}

// Badge returns the header badge projection.
func (s *Service) Badge(ctx context.Context, cartKey string) (*types.BadgeView, error) {
	cart, err := s.store.Load(ctx, cartKey)
	if err != nil {
		return nil, err
	}
	return types.BuildBadge(cart), nil
}

// AddItem merges the item into the cart and persists immediately.
func (s *Service) AddItem(ctx context.Context, input types.AddItemInput) (*types.DrawerView, error) {
	cart, err := s.store.Load(ctx, input.CartKey)
	if err != nil {
		return nil, err
	}
	next, err := domain.Add(cart, input.Item)
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.store.Save(ctx, input.CartKey, next); err != nil {
		return nil, err
	}
	return types.BuildDrawer(next), nil
}

// RemoveItem drops the addressed line entirely.
func (s *Service) RemoveItem(ctx context.Context, ref types.LineRef) (*types.DrawerView, error) {
	cart, err := s.store.Load(ctx, ref.CartKey)
	if err != nil {
		return nil, err
	}
	next := domain.Remove(cart, ref.ProductID, ref.Size)
	if err := s.store.Save(ctx, ref.CartKey, next); err != nil {
		return nil, err
	}
	return types.BuildDrawer(next), nil
}

// ChangeQuantity adjusts the addressed line by a signed delta, floored at
// one unit.
func (s *Service) ChangeQuantity(ctx context.Context, input types.ChangeQuantityInput) (*types.DrawerView, error) {
	cart, err := s.store.Load(ctx, input.CartKey)
	if err != nil {
		return nil, err
	}
	next := domain.AdjustQuantity(cart, input.ProductID, input.Size, input.Delta)
	if err := s.store.Save(ctx, input.CartKey, next); err != nil {
		return nil, err
	}
	return types.BuildDrawer(next), nil
}

// Clear empties the cart slot.
func (s *Service) Clear(ctx context.Context, cartKey string) error {
	return s.store.Save(ctx, cartKey, domain.Cart{})
}

var _ ports.Service = (*Service)(nil)
