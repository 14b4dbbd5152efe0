package memory

import (
	"context"

	"github.com/wollylully/storefront/internal/domains/catalog/domain"
	"github.com/wollylully/storefront/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository serves the static prototype catalog from memory. Used when
// no database is configured and to seed integration fixtures.
type Repository struct {
	cards []domain.ProductCard
}

// NewRepository returns a repository preloaded with the prototype cards.
func NewRepository() *Repository {
	return &Repository{cards: SeedCards()}
}

// NewRepositoryWith serves the given cards.
func NewRepositoryWith(cards []domain.ProductCard) *Repository {
	return &Repository{cards: append([]domain.ProductCard{}, cards...)}
}

func (r *Repository) List(_ context.Context) ([]domain.ProductCard, error) {
	return append([]domain.ProductCard{}, r.cards...), nil
}

// SeedCards is the storefront's static shop grid.
func SeedCards() []domain.ProductCard {
	return []domain.ProductCard{
		{
			ID: "navy-cashmere-crewneck", Name: "Navy Cashmere Crewneck",
			PriceBand: "200-300", Price: 285, DisplayOrder: 1,
			Colour: "navy", Fit: "classic", Style: "knitwear", Material: "cashmere",
			Sizes: []string{"XS", "S", "M", "L", "XL"},
			Image: "imgs/products/navy-cashmere-crewneck-front.png",
		},
		{
			ID: "grey-cashmere-beanie", Name: "Grey Cashmere Beanie",
			PriceBand: "100-200", Price: 185, DisplayOrder: 2,
			Colour: "grey", Style: "accessories", Material: "cashmere",
			Sizes: []string{"One Size"},
			Image: "imgs/products/grey-cashmere-beanie-front.png",
		},
		{
			ID: "navy-shawl-cardigan", Name: "Navy Shawl Cardigan",
			PriceBand: "300+", Price: 345, DisplayOrder: 3,
			Colour: "navy", Fit: "relaxed", Style: "knitwear", Material: "cashmere",
			Sizes: []string{"S", "M", "L", "XL", "XXL"},
		},
		{
			ID: "camel-ribbed-scarf", Name: "Camel Ribbed Scarf",
			PriceBand: "100-200", Price: 195, DisplayOrder: 4,
			Colour: "camel", Style: "accessories", Material: "cashmere",
			Sizes: []string{"One Size"},
		},
		{
			ID: "ivory-knit-polo", Name: "Ivory Knit Polo",
			PriceBand: "100-200", Price: 165, DisplayOrder: 5,
			Colour: "ivory", Fit: "slim", Style: "knitwear", Material: "merino",
			Sizes: []string{"XS", "S", "M", "L"},
		},
		{
			ID: "grey-lounge-joggers", Name: "Grey Lounge Joggers",
			PriceBand: "100-200", Price: 175, DisplayOrder: 6,
			Colour: "grey", Fit: "relaxed", Style: "loungewear", Material: "cashmere",
			Sizes: []string{"S", "M", "L", "XL"},
		},
		{
			ID: "navy-cashmere-hoodie", Name: "Navy Cashmere Hoodie",
			PriceBand: "300+", Price: 395, DisplayOrder: 7,
			Colour: "navy", Fit: "relaxed", Style: "loungewear", Material: "cashmere",
			Sizes: []string{"S", "M", "L", "XL", "XXL"},
		},
		{
			ID: "camel-classic-turtleneck", Name: "Camel Classic Turtleneck",
			PriceBand: "200-300", Price: 295, DisplayOrder: 8,
			Colour: "camel", Fit: "classic", Style: "knitwear", Material: "cashmere",
			Sizes: []string{"XS", "S", "M", "L", "XL"},
		},
	}
}
