package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wollylully/storefront/internal/domains/catalog/application/types"
	"github.com/wollylully/storefront/internal/domains/catalog/domain"
)

type fakeCatalog struct {
	cards []domain.ProductCard
}

func (f *fakeCatalog) List(_ context.Context) ([]domain.ProductCard, error) {
	return append([]domain.ProductCard{}, f.cards...), nil
}

func fiveCards() []domain.ProductCard {
	return []domain.ProductCard{
		{ID: "crewneck", Name: "Navy Cashmere Crewneck", Colour: "navy", Price: 285, DisplayOrder: 1, Sizes: []string{"S", "M", "L"}},
		{ID: "cardigan", Name: "Navy Shawl Cardigan", Colour: "navy", Price: 345, DisplayOrder: 2, Sizes: []string{"M", "L"}},
		{ID: "beanie", Name: "Grey Cashmere Beanie", Colour: "grey", Price: 185, DisplayOrder: 3, Sizes: []string{"One Size"}},
		{ID: "scarf", Name: "Camel Scarf", Colour: "camel", Price: 195, DisplayOrder: 4, Sizes: []string{"One Size"}},
		{ID: "polo", Name: "Ivory Knit Polo", Colour: "ivory", Price: 165, DisplayOrder: 5, Sizes: []string{"XS", "S"}},
	}
}

func TestApply_ColourFilterCountsAndChips(t *testing.T) {
	svc := NewService(&fakeCatalog{cards: fiveCards()})

	result, err := svc.Apply(context.Background(), types.ApplyInput{
		State:  domain.NewFilterState(),
		Action: types.Action{Kind: types.ActionToggle, Facet: domain.FacetColour, Value: "navy"},
	})
	require.NoError(t, err)

	assert.Equal(t, "navy", result.State.Colour)
	assert.Equal(t, "2 of 5 products", result.Grid.CountLabel)
	require.Len(t, result.Grid.Chips, 1)
	assert.Equal(t, "Colour", result.Grid.Chips[0].Label)
	assert.Equal(t, "navy", result.Grid.Chips[0].Value)
	assert.True(t, result.Grid.BadgeVisible)
}

func TestApply_ToggleOffRestoresFullGrid(t *testing.T) {
	svc := NewService(&fakeCatalog{cards: fiveCards()})
	state := domain.NewFilterState().Toggle(domain.FacetSize, "M")

	result, err := svc.Apply(context.Background(), types.ApplyInput{
		State:  state,
		Action: types.Action{Kind: types.ActionToggle, Facet: domain.FacetSize, Value: "M"},
	})
	require.NoError(t, err)

	assert.Empty(t, result.State.Size)
	assert.Equal(t, "5 of 5 products", result.Grid.CountLabel)
	assert.Empty(t, result.Grid.Chips)
	assert.False(t, result.Grid.BadgeVisible)
}

func TestApply_IsPureForIdenticalState(t *testing.T) {
	svc := NewService(&fakeCatalog{cards: fiveCards()})
	state := domain.NewFilterState().Toggle(domain.FacetColour, "navy")

	first, err := svc.Apply(context.Background(), types.ApplyInput{State: state})
	require.NoError(t, err)
	second, err := svc.Apply(context.Background(), types.ApplyInput{State: state})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestApply_SortReordersWithoutChangingVisibility(t *testing.T) {
	svc := NewService(&fakeCatalog{cards: fiveCards()})
	state := domain.NewFilterState().Toggle(domain.FacetColour, "navy")

	result, err := svc.Apply(context.Background(), types.ApplyInput{
		State:  state,
		Action: types.Action{Kind: types.ActionSort, Sort: domain.SortPriceAsc},
	})
	require.NoError(t, err)

	require.Len(t, result.Grid.Cards, 5)
	assert.Equal(t, "polo", result.Grid.Cards[0].ID, "hidden cards are reordered too")
	assert.False(t, result.Grid.Cards[0].Visible)
	assert.Equal(t, 2, result.Grid.VisibleCount)
}

func TestApply_ClearAllKeepsSort(t *testing.T) {
	svc := NewService(&fakeCatalog{cards: fiveCards()})
	state := domain.NewFilterState().
		Toggle(domain.FacetColour, "navy").
		WithSort(domain.SortPriceDesc)

	result, err := svc.Apply(context.Background(), types.ApplyInput{
		State:  state,
		Action: types.Action{Kind: types.ActionClearAll},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Grid.VisibleCount)
	assert.Equal(t, domain.SortPriceDesc, result.State.Sort)
	assert.Equal(t, "cardigan", result.Grid.Cards[0].ID)
}

func TestApply_ClearSingleFacetViaChip(t *testing.T) {
	svc := NewService(&fakeCatalog{cards: fiveCards()})
	state := domain.NewFilterState().
		Toggle(domain.FacetColour, "navy").
		Toggle(domain.FacetSize, "M")

	result, err := svc.Apply(context.Background(), types.ApplyInput{
		State:  state,
		Action: types.Action{Kind: types.ActionClear, Facet: domain.FacetColour},
	})
	require.NoError(t, err)

	assert.Empty(t, result.State.Colour)
	assert.Equal(t, "M", result.State.Size, "other facets survive chip removal")
	require.Len(t, result.Grid.Chips, 1)
	assert.Equal(t, "Size", result.Grid.Chips[0].Label)
}

func TestApply_UnknownFacetRejected(t *testing.T) {
	svc := NewService(&fakeCatalog{cards: fiveCards()})

	_, err := svc.Apply(context.Background(), types.ApplyInput{
		State:  domain.NewFilterState(),
		Action: types.Action{Kind: types.ActionToggle, Facet: domain.Facet("brand"), Value: "x"},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestProducts_FeaturedOrder(t *testing.T) {
	shuffled := fiveCards()
	shuffled[0], shuffled[4] = shuffled[4], shuffled[0]
	svc := NewService(&fakeCatalog{cards: shuffled})

	products, err := svc.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 5)
	assert.Equal(t, "crewneck", products[0].ID)
}
