package ports

import (
	"context"

	"github.com/wollylully/storefront/internal/domains/cart/application/types"
)

// Service exposes cart use cases to adapters. Every mutation persists
// immediately and returns the refreshed drawer projection.
type Service interface {
	Drawer(ctx context.Context, cartKey string) (*types.DrawerView, error)
	Badge(ctx context.Context, cartKey string) (*types.BadgeView, error)
	AddItem(ctx context.Context, input types.AddItemInput) (*types.DrawerView, error)
	RemoveItem(ctx context.Context, ref types.LineRef) (*types.DrawerView, error)
	ChangeQuantity(ctx context.Context, input types.ChangeQuantityInput) (*types.DrawerView, error)
	Clear(ctx context.Context, cartKey string) error
}
