package ports

import (
	"context"

	"github.com/wollylully/storefront/internal/domains/catalog/domain"
)

// Repository supplies the product cards backing the shop grid.
type Repository interface {
	List(ctx context.Context) ([]domain.ProductCard, error)
}
