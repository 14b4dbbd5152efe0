package types

import (
	"fmt"
	"strings"

	"github.com/wollylully/storefront/internal/domains/cart/domain"
	"github.com/wollylully/storefront/internal/shared/currency"
)

// DrawerLine is the display projection of one cart line.
type DrawerLine struct {
	ProductID   string  `json:"productId"`
	Size        string  `json:"size"`
	Colour      string  `json:"colour"`
	Name        string  `json:"name"`
	Meta        string  `json:"meta"`
	Image       string  `json:"image,omitempty"`
	Placeholder string  `json:"placeholder,omitempty"`
	Quantity    int     `json:"quantity"`
	LinePrice   string  `json:"linePrice"`
	LineTotal   float64 `json:"lineTotal"`
}

// ShippingProgressView reports progress toward free delivery.
type ShippingProgressView struct {
	Percent  float64 `json:"percent"`
	Message  string  `json:"message"`
	Unlocked bool    `json:"unlocked"`
}

// DrawerFooter carries the formatted cart totals.
type DrawerFooter struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	VAT      string `json:"vat"`
	Total    string `json:"total"`
}

// DrawerView is the full cart drawer projection. Building it is a pure
// function of the cart: identical carts produce identical views.
type DrawerView struct {
	Items    []DrawerLine         `json:"items"`
	Empty    bool                 `json:"empty"`
	Header   string               `json:"header"`
	Progress ShippingProgressView `json:"progress"`
	Footer   DrawerFooter         `json:"footer"`
}

// BadgeView backs the header cart badge.
type BadgeView struct {
	Count   int  `json:"count"`
	Visible bool `json:"visible"`
}

// BuildDrawer projects a cart into its drawer view.
func BuildDrawer(cart domain.Cart) *DrawerView {
	subtotal := domain.Total(cart)
	shipping := domain.ShippingFor(subtotal)
	total := subtotal + shipping

	view := &DrawerView{
		Items:    make([]DrawerLine, 0, len(cart)),
		Empty:    len(cart) == 0,
		Header:   headerFor(domain.Count(cart)),
		Progress: buildProgress(subtotal),
		Footer: DrawerFooter{
			Subtotal: currency.Amount(subtotal),
			Shipping: currency.AmountOrFree(shipping),
			VAT:      currency.VAT(domain.VATPortion(total)),
			Total:    currency.Amount(total),
		},
	}
	for _, item := range cart {
		view.Items = append(view.Items, buildLine(item))
	}
	return view
}

// BuildBadge projects a cart into its badge view. The badge is hidden
// while the cart is empty.
func BuildBadge(cart domain.Cart) *BadgeView {
	count := domain.Count(cart)
	return &BadgeView{Count: count, Visible: count > 0}
}

func buildLine(item domain.LineItem) DrawerLine {
	line := DrawerLine{
		ProductID: item.ProductID,
		Size:      item.Size,
		Colour:    item.Colour,
		Name:      item.Name,
		Meta:      strings.Join([]string{item.Composition, item.Size, item.Fit}, " · "),
		Image:     item.Image,
		Quantity:  item.Quantity,
		LinePrice: currency.Amount(item.LineTotal()),
		LineTotal: item.LineTotal(),
	}
	if line.Image == "" {
		line.Placeholder = firstWord(item.Name)
	}
	return line
}

func buildProgress(subtotal float64) ShippingProgressView {
	progress := domain.ShippingProgress(subtotal)
	view := ShippingProgressView{Percent: progress.Percent, Unlocked: progress.Unlocked}
	if progress.Unlocked {
		view.Message = "Free delivery unlocked!"
		return view
	}
	view.Message = fmt.Sprintf("Add %s more for free delivery", currency.Amount(progress.Remaining))
	return view
}

func headerFor(count int) string {
	noun := "items"
	if count == 1 {
		noun = "item"
	}
	return fmt.Sprintf("Your Cart (%d %s)", count, noun)
}

func firstWord(name string) string {
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		return name[:idx]
	}
	return name
}
