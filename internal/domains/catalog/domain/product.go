package domain

import "sort"

// ProductCard is a read-only display record for the shop grid. Facet
// attributes and pricing come from the catalog; the filter engine never
// mutates product data.
type ProductCard struct {
	ID           string
	Name         string
	PriceBand    string
	Price        float64
	DisplayOrder int
	Colour       string
	Fit          string
	Style        string
	Material     string
	Sizes        []string
	Image        string
}

// SortKey orders the shop grid.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// ValidSort reports whether the key is a known sort order.
func ValidSort(key SortKey) bool {
	switch key {
	case SortFeatured, SortPriceAsc, SortPriceDesc:
		return true
	default:
		return false
	}
}

// SortCards returns the cards ordered by the sort key. All cards are
// reordered, hidden ones included; sorting never affects visibility.
func SortCards(cards []ProductCard, key SortKey) []ProductCard {
	ordered := append([]ProductCard{}, cards...)
	switch key {
	case SortPriceAsc:
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Price < ordered[j].Price })
	case SortPriceDesc:
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Price > ordered[j].Price })
	default:
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].DisplayOrder < ordered[j].DisplayOrder })
	}
	return ordered
}
