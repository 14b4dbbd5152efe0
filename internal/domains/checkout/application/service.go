package application

import (
	"context"

	cartports "github.com/wollylully/storefront/internal/domains/cart/ports"
	"github.com/wollylully/storefront/internal/domains/checkout/application/types"
	"github.com/wollylully/storefront/internal/domains/checkout/ports"
)

// Service derives the checkout order summary from the shared cart store.
// No checkout state of its own; the cart slot is the only input.
type Service struct {
	carts cartports.Store
}

func NewService(carts cartports.Store) *Service {
	return &Service{carts: carts}
}

// Summary builds the order summary for the cart key. An empty cart yields
// the explicit demo order.
func (s *Service) Summary(ctx context.Context, cartKey string) (*types.SummaryView, error) {
	cart, err := s.carts.Load(ctx, cartKey)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return types.BuildDemoSummary(), nil
	}
	return types.BuildSummary(cart), nil
}

var _ ports.Service = (*Service)(nil)
