package types

import (
	"fmt"

	"github.com/wollylully/storefront/internal/domains/catalog/domain"
	"github.com/wollylully/storefront/internal/shared/currency"
)

// CardView is the display projection of one product card in the grid.
// Cards stay in the list when filtered out; only Visible flips, so sort
// order is independent of visibility.
type CardView struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   string  `json:"price"`
	Colour  string  `json:"colour"`
	Image   string  `json:"image,omitempty"`
	Visible bool    `json:"visible"`
	Value   float64 `json:"priceValue"`
}

// ChipView is one removable active-filter token.
type ChipView struct {
	Facet string `json:"facet"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// GridView is the full shop grid projection for a filter state.
type GridView struct {
	Cards        []CardView `json:"cards"`
	CountLabel   string     `json:"countLabel"`
	VisibleCount int        `json:"visibleCount"`
	TotalCount   int        `json:"totalCount"`
	Chips        []ChipView `json:"chips"`
	ActiveCount  int        `json:"activeCount"`
	BadgeVisible bool       `json:"badgeVisible"`
}

// ApplyInput carries the client's current filter state plus at most one
// state-transition action.
type ApplyInput struct {
	State  domain.FilterState `json:"state"`
	Action Action             `json:"action"`
}

// Action kinds understood by the filter engine.
const (
	ActionNone     = ""
	ActionToggle   = "toggle"
	ActionClear    = "clear"
	ActionClearAll = "clear-all"
	ActionSort     = "sort"
)

// Action is one filter-control event.
type Action struct {
	Kind  string         `json:"kind"`
	Facet domain.Facet   `json:"facet,omitempty"`
	Value string         `json:"value,omitempty"`
	Sort  domain.SortKey `json:"sort,omitempty"`
}

// ApplyResult returns the next state alongside its grid view.
type ApplyResult struct {
	State domain.FilterState `json:"state"`
	Grid  *GridView          `json:"grid"`
}

// BuildGrid projects the filter state over the cards. Pure: identical
// state and cards produce an identical view.
func BuildGrid(state domain.FilterState, cards []domain.ProductCard) *GridView {
	ordered := domain.SortCards(cards, state.Sort)
	view := &GridView{
		Cards:      make([]CardView, 0, len(ordered)),
		TotalCount: len(ordered),
	}
	for _, card := range ordered {
		visible := state.Matches(card)
		if visible {
			view.VisibleCount++
		}
		view.Cards = append(view.Cards, CardView{
			ID:      card.ID,
			Name:    card.Name,
			Price:   currency.Amount(card.Price),
			Colour:  card.Colour,
			Image:   card.Image,
			Visible: visible,
			Value:   card.Price,
		})
	}
	view.CountLabel = fmt.Sprintf("%d of %d products", view.VisibleCount, view.TotalCount)
	for _, active := range state.Active() {
		view.Chips = append(view.Chips, ChipView{
			Facet: string(active.Facet),
			Label: active.Facet.Label(),
			Value: active.Value,
		})
	}
	view.ActiveCount = len(view.Chips)
	view.BadgeVisible = view.ActiveCount > 0
	return view
}
