package ports

import (
	"context"

	"github.com/wollylully/storefront/internal/domains/catalog/application/types"
	"github.com/wollylully/storefront/internal/domains/catalog/domain"
)

// Service exposes the shop filter engine to adapters.
type Service interface {
	Products(ctx context.Context) ([]domain.ProductCard, error)
	Apply(ctx context.Context, input types.ApplyInput) (*types.ApplyResult, error)
}
