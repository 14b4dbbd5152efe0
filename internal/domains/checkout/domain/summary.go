package domain

import "strings"

// DemoLine is one entry in the fixed demonstration order shown when
// checkout is reached with an empty cart.
type DemoLine struct {
	Name     string
	Meta     string
	Price    float64
	Quantity int
	Image    string
}

// Demo order totals, fixed by the prototype.
const (
	DemoSubtotal = 470.0
	DemoShipping = 9.0
	DemoTotal    = 479.0
)

// DemoOrder returns the two-item demonstration order. The checkout page
// never appears broken when reached directly without items; views built
// from it carry an explicit demo flag.
func DemoOrder() []DemoLine {
	return []DemoLine{
		{
			Name:     "Navy Cashmere Crewneck",
			Meta:     "100% 2-ply cashmere · Size M · Classic Fit",
			Price:    285,
			Quantity: 1,
			Image:    "imgs/products/navy-cashmere-crewneck-front.png",
		},
		{
			Name:     "Grey Cashmere Beanie",
			Meta:     "100% cashmere · One Size",
			Price:    185,
			Quantity: 1,
			Image:    "imgs/products/grey-cashmere-beanie-front.png",
		},
	}
}

// ShortFit trims a verbose fit label to its leading name, dropping the
// description after the em-dash ("Classic Fit — true to standard sizing"
// becomes "Classic Fit").
func ShortFit(fit string) string {
	if idx := strings.Index(fit, "—"); idx >= 0 {
		return strings.TrimSpace(fit[:idx])
	}
	return strings.TrimSpace(fit)
}
