package ports

import (
	"context"

	"github.com/wollylully/storefront/internal/domains/checkout/application/types"
)

// Service exposes the checkout summary to adapters.
type Service interface {
	Summary(ctx context.Context, cartKey string) (*types.SummaryView, error)
}
