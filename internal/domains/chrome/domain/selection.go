package domain

import "fmt"

// DefaultColour is preselected on the product page.
const DefaultColour = "Navy"

var fitLabels = map[string]string{
	"XS":  "Slim Fit — close-cut, tailored",
	"S":   "Slim Fit — close-cut, tailored",
	"M":   "Classic Fit — true to standard sizing",
	"L":   "Classic Fit — true to standard sizing",
	"XL":  "Relaxed Fit — falls softly, generous through the body",
	"XXL": "Relaxed Fit — falls softly, generous through the body",
}

// Selection is the product page's explicit colour/size selection state.
// Renders read only from here, never from prior render output.
type Selection struct {
	Colour string
	Size   string
}

// WithColour returns the selection with the colour set.
func (s Selection) WithColour(colour string) Selection {
	s.Colour = colour
	return s
}

// WithSize returns the selection with the size set.
func (s Selection) WithSize(size string) Selection {
	s.Size = size
	return s
}

// SizeChosen reports whether a size has been picked. Add-to-cart is gated
// on it.
func (s Selection) SizeChosen() bool { return s.Size != "" }

// EffectiveColour falls back to the default swatch.
func (s Selection) EffectiveColour() string {
	if s.Colour == "" {
		return DefaultColour
	}
	return s.Colour
}

// FitLabel describes the fit of the selected size, empty when no size or
// an unknown size is selected.
func (s Selection) FitLabel() string { return fitLabels[s.Size] }

// StickyMeta is the sticky add-to-cart bar's summary line.
func (s Selection) StickyMeta() string {
	if !s.SizeChosen() {
		return s.EffectiveColour()
	}
	return fmt.Sprintf("%s · Size %s", s.EffectiveColour(), s.Size)
}

// AddToCartLabel renders the add-to-cart button text for a price.
func AddToCartLabel(price float64) string {
	return fmt.Sprintf("ADD TO CART — CHF %.0f", price)
}
