package types

import (
	"fmt"
	"strings"

	cartdomain "github.com/wollylully/storefront/internal/domains/cart/domain"
	"github.com/wollylully/storefront/internal/domains/checkout/domain"
	"github.com/wollylully/storefront/internal/shared/currency"
)

// OrderLine is one row of the checkout order summary.
type OrderLine struct {
	Name     string `json:"name"`
	Meta     string `json:"meta"`
	Quantity int    `json:"quantity"`
	Colour   string `json:"colour,omitempty"`
	Image    string `json:"image,omitempty"`
	Price    string `json:"price"`
}

// SummaryView is the checkout summary projection. Demo marks the fixed
// fallback order rendered when no cart exists.
type SummaryView struct {
	Demo     bool        `json:"demo"`
	Lines    []OrderLine `json:"lines"`
	Subtotal string      `json:"subtotal"`
	Shipping string      `json:"shipping"`
	VAT      string      `json:"vat"`
	Total    string      `json:"total"`
	PayLabel string      `json:"payLabel"`
}

// BuildSummary projects a non-empty cart into the checkout summary,
// mirroring the cart drawer's totals computation.
func BuildSummary(cart cartdomain.Cart) *SummaryView {
	subtotal := cartdomain.Total(cart)
	shipping := cartdomain.ShippingFor(subtotal)
	total := subtotal + shipping

	view := &SummaryView{Lines: make([]OrderLine, 0, len(cart))}
	for _, item := range cart {
		meta := []string{item.Composition, item.Size}
		if fit := domain.ShortFit(item.Fit); fit != "" {
			meta = append(meta, fit)
		}
		view.Lines = append(view.Lines, OrderLine{
			Name:     item.Name,
			Meta:     strings.Join(meta, " · "),
			Quantity: item.Quantity,
			Colour:   item.Colour,
			Image:    item.Image,
			Price:    currency.Amount(item.LineTotal()),
		})
	}
	fillTotals(view, subtotal, shipping, total)
	return view
}

// BuildDemoSummary returns the fixed demonstration order with its static
// totals.
func BuildDemoSummary() *SummaryView {
	view := &SummaryView{Demo: true}
	for _, line := range domain.DemoOrder() {
		view.Lines = append(view.Lines, OrderLine{
			Name:     line.Name,
			Meta:     line.Meta,
			Quantity: line.Quantity,
			Image:    line.Image,
			Price:    currency.Amount(line.Price * float64(line.Quantity)),
		})
	}
	fillTotals(view, domain.DemoSubtotal, domain.DemoShipping, domain.DemoTotal)
	return view
}

func fillTotals(view *SummaryView, subtotal, shipping, total float64) {
	view.Subtotal = currency.Amount(subtotal)
	view.Shipping = currency.AmountOrFree(shipping)
	view.VAT = currency.VAT(cartdomain.VATPortion(total))
	view.Total = currency.Amount(total)
	view.PayLabel = fmt.Sprintf("PAY SECURELY — %s", currency.Amount(total))
}
