package domain

import "errors"

var (
	ErrEmptyProductID = errors.New("product id is required")
	ErrEmptySize      = errors.New("size must be selected")
	ErrInvalidPrice   = errors.New("price must be greater than zero")
)

// LineItem is one distinguishable cart entry, unique per (ProductID, Size).
type LineItem struct {
	ProductID   string
	Size        string
	Colour      string
	Name        string
	Price       float64
	Composition string
	Fit         string
	Image       string
	Quantity    int
}

// Key identifies a line item within a cart.
type Key struct {
	ProductID string
	Size      string
}

func (i LineItem) Key() Key { return Key{ProductID: i.ProductID, Size: i.Size} }

// LineTotal is the price of the line across its quantity.
func (i LineItem) LineTotal() float64 { return i.Price * float64(i.Quantity) }

// Validate enforces invariants on a line item before it enters a cart.
func (i LineItem) Validate() error {
	if i.ProductID == "" {
		return ErrEmptyProductID
	}
	if i.Size == "" {
		return ErrEmptySize
	}
	if i.Price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Cart is an ordered list of line items. Insertion order is preserved.
type Cart []LineItem

// Total sums price times quantity over all lines.
func Total(cart Cart) float64 {
	var sum float64
	for _, item := range cart {
		sum += item.LineTotal()
	}
	return sum
}

// Count sums quantities over all lines.
func Count(cart Cart) int {
	var count int
	for _, item := range cart {
		count += item.Quantity
	}
	return count
}

// Add merges the item into the cart: an existing line with the same
// (ProductID, Size) gains one unit, otherwise the item is appended with
// quantity 1. The incoming item's quantity field is ignored.
func Add(cart Cart, item LineItem) (Cart, error) {
	if err := item.Validate(); err != nil {
		return cart, err
	}
	next := append(Cart{}, cart...)
	for idx := range next {
		if next[idx].Key() == item.Key() {
			next[idx].Quantity++
			return next, nil
		}
	}
	item.Quantity = 1
	return append(next, item), nil
}

// Remove drops the matching line entirely, regardless of its quantity.
func Remove(cart Cart, productID, size string) Cart {
	key := Key{ProductID: productID, Size: size}
	next := make(Cart, 0, len(cart))
	for _, item := range cart {
		if item.Key() == key {
			continue
		}
		next = append(next, item)
	}
	return next
}

// AdjustQuantity changes the matching line's quantity by delta, floored at
// one. Removal is an explicit separate operation. Carts without a matching
// line are returned unchanged.
func AdjustQuantity(cart Cart, productID, size string, delta int) Cart {
	key := Key{ProductID: productID, Size: size}
	next := append(Cart{}, cart...)
	for idx := range next {
		if next[idx].Key() != key {
			continue
		}
		qty := next[idx].Quantity + delta
		if qty < 1 {
			qty = 1
		}
		next[idx].Quantity = qty
		break
	}
	return next
}

// Find returns the matching line and whether it exists.
func Find(cart Cart, productID, size string) (LineItem, bool) {
	key := Key{ProductID: productID, Size: size}
	for _, item := range cart {
		if item.Key() == key {
			return item, true
		}
	}
	return LineItem{}, false
}
