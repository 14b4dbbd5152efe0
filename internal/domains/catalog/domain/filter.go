package domain

// Facet is one independently-settable filter dimension.
type Facet string

const (
	FacetPrice    Facet = "price"
	FacetColour   Facet = "colour"
	FacetSize     Facet = "size"
	FacetFit      Facet = "fit"
	FacetStyle    Facet = "style"
	FacetMaterial Facet = "material"
)

// Facets lists all facets in display order.
func Facets() []Facet {
	return []Facet{FacetPrice, FacetColour, FacetSize, FacetFit, FacetStyle, FacetMaterial}
}

var facetLabels = map[Facet]string{
	FacetPrice:    "Price",
	FacetColour:   "Colour",
	FacetSize:     "Size",
	FacetFit:      "Fit",
	FacetStyle:    "Style",
	FacetMaterial: "Material",
}

// Label returns the chip label for the facet.
func (f Facet) Label() string { return facetLabels[f] }

// Valid reports whether the facet is known.
func (f Facet) Valid() bool {
	_, ok := facetLabels[f]
	return ok
}

// FilterState holds the shop's current filter selection plus sort order.
// An unset facet (empty string) imposes no constraint. The state lives on
// the client between applies; it is reinitialized on page load and never
// persisted.
type FilterState struct {
	Price    string  `json:"price"`
	Colour   string  `json:"colour"`
	Size     string  `json:"size"`
	Fit      string  `json:"fit"`
	Style    string  `json:"style"`
	Material string  `json:"material"`
	Sort     SortKey `json:"sort"`
}

// NewFilterState is the page-load state: all facets unset, featured sort.
func NewFilterState() FilterState {
	return FilterState{Sort: SortFeatured}
}

// Get returns the facet's current value.
func (s FilterState) Get(facet Facet) string {
	switch facet {
	case FacetPrice:
		return s.Price
	case FacetColour:
		return s.Colour
	case FacetSize:
		return s.Size
	case FacetFit:
		return s.Fit
	case FacetStyle:
		return s.Style
	case FacetMaterial:
		return s.Material
	default:
		return ""
	}
}

func (s FilterState) with(facet Facet, value string) FilterState {
	switch facet {
	case FacetPrice:
		s.Price = value
	case FacetColour:
		s.Colour = value
	case FacetSize:
		s.Size = value
	case FacetFit:
		s.Fit = value
	case FacetStyle:
		s.Style = value
	case FacetMaterial:
		s.Material = value
	}
	return s
}

// Toggle sets the facet to value, or clears it when value is already the
// active selection (deselect-by-reselect).
func (s FilterState) Toggle(facet Facet, value string) FilterState {
	if s.Get(facet) == value {
		return s.with(facet, "")
	}
	return s.with(facet, value)
}

// ClearFacet unsets a single facet.
func (s FilterState) ClearFacet(facet Facet) FilterState {
	return s.with(facet, "")
}

// ClearAll unsets every facet. Sort order is preserved, matching the
// storefront's clear button.
func (s FilterState) ClearAll() FilterState {
	return FilterState{Sort: s.Sort}
}

// WithSort returns the state with the given sort order; unknown keys fall
// back to featured.
func (s FilterState) WithSort(key SortKey) FilterState {
	if !ValidSort(key) {
		key = SortFeatured
	}
	s.Sort = key
	return s
}

// ActiveFilter is one set facet:value pair.
type ActiveFilter struct {
	Facet Facet
	Value string
}

// Active lists the set facets in display order.
func (s FilterState) Active() []ActiveFilter {
	var active []ActiveFilter
	for _, facet := range Facets() {
		if value := s.Get(facet); value != "" {
			active = append(active, ActiveFilter{Facet: facet, Value: value})
		}
	}
	return active
}

// Matches reports whether the card satisfies every set facet. Facets
// combine with logical AND; size matches against the card's size list,
// the rest compare exactly.
func (s FilterState) Matches(card ProductCard) bool {
	if s.Price != "" && card.PriceBand != s.Price {
		return false
	}
	if s.Colour != "" && card.Colour != s.Colour {
		return false
	}
	if s.Size != "" && !containsSize(card.Sizes, s.Size) {
		return false
	}
	if s.Fit != "" && card.Fit != s.Fit {
		return false
	}
	if s.Style != "" && card.Style != s.Style {
		return false
	}
	if s.Material != "" && card.Material != s.Material {
		return false
	}
	return true
}

func containsSize(sizes []string, size string) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}
