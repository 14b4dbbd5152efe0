package types

import "github.com/wollylully/storefront/internal/domains/cart/domain"

// AddItemInput carries a product-page add-to-cart request.
type AddItemInput struct {
	CartKey string
	Item    domain.LineItem
}

// LineRef addresses one cart line by its identity pair.
type LineRef struct {
	CartKey   string
	ProductID string
	Size      string
}

// ChangeQuantityInput adjusts a line's quantity by a signed delta.
type ChangeQuantityInput struct {
	LineRef
	Delta int
}
