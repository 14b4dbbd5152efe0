package application

import (
	"context"

	"github.com/wollylully/storefront/internal/domains/catalog/application/types"
	"github.com/wollylully/storefront/internal/domains/catalog/domain"
	"github.com/wollylully/storefront/internal/domains/catalog/ports"
)

// Service evaluates the shop filter engine. Cards are read fresh from the
// repository on every apply; filter state belongs to the caller and is
// never stored here.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Products lists the full catalog in display order.
func (s *Service) Products(ctx context.Context) ([]domain.ProductCard, error) {
	cards, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SortCards(cards, domain.SortFeatured), nil
}

// Apply runs one state transition and projects the resulting grid.
func (s *Service) Apply(ctx context.Context, input types.ApplyInput) (*types.ApplyResult, error) {
	state, err := reduce(input.State, input.Action)
	if err != nil {
		return nil, err
	}
	cards, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &types.ApplyResult{State: state, Grid: types.BuildGrid(state, cards)}, nil
}

func reduce(state domain.FilterState, action types.Action) (domain.FilterState, error) {
	if !domain.ValidSort(state.Sort) {
		state.Sort = domain.SortFeatured
	}
	switch action.Kind {
	case types.ActionNone:
		return state, nil
	case types.ActionToggle:
		if !action.Facet.Valid() {
			return state, errUnknownFacet(action.Facet)
		}
		return state.Toggle(action.Facet, action.Value), nil
	case types.ActionClear:
		if !action.Facet.Valid() {
			return state, errUnknownFacet(action.Facet)
		}
		return state.ClearFacet(action.Facet), nil
	case types.ActionClearAll:
		return state.ClearAll(), nil
	case types.ActionSort:
		return state.WithSort(action.Sort), nil
	default:
		return state, errUnknownAction(action.Kind)
	}
}

var _ ports.Service = (*Service)(nil)
