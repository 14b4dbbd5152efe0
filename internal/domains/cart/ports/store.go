package ports

import (
	"context"

	"github.com/wollylully/storefront/internal/domains/cart/domain"
)

// Store is the single source of truth for cart state. One serialized slot
// per cart key; Save replaces the whole list, Load always reads fresh.
// Missing or malformed slots load as an empty cart, never as an error the
// shopper sees.
type Store interface {
	Load(ctx context.Context, key string) (domain.Cart, error)
	Save(ctx context.Context, key string, cart domain.Cart) error
}
