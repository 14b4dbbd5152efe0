package postgres

import (
	"encoding/json"

	"github.com/wollylully/storefront/internal/domains/cart/domain"
)

// lineRecord is the stored shape of a cart line. Field names match the
// prototype's persisted layout so existing slots keep loading.
type lineRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Size        string  `json:"size"`
	Colour      string  `json:"colour"`
	Composition string  `json:"composition"`
	Fit         string  `json:"fit"`
	Image       string  `json:"image,omitempty"`
	Qty         *int    `json:"qty"`
}

// encodeCart serializes the whole list; the slot is always replaced
// wholesale.
func encodeCart(cart domain.Cart) ([]byte, error) {
	records := make([]lineRecord, 0, len(cart))
	for _, item := range cart {
		qty := item.Quantity
		records = append(records, lineRecord{
			ID:          item.ProductID,
			Name:        item.Name,
			Price:       item.Price,
			Size:        item.Size,
			Colour:      item.Colour,
			Composition: item.Composition,
			Fit:         item.Fit,
			Image:       item.Image,
			Qty:         &qty,
		})
	}
	return json.Marshal(records)
}

// decodeCart deserializes a stored slot. Corrupt payloads yield an empty
// cart rather than an error; unknown fields are ignored and a missing or
// non-positive quantity defaults to 1.
func decodeCart(payload []byte) domain.Cart {
	if len(payload) == 0 {
		return domain.Cart{}
	}
	var records []lineRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return domain.Cart{}
	}
	cart := make(domain.Cart, 0, len(records))
	for _, rec := range records {
		qty := 1
		if rec.Qty != nil && *rec.Qty > 0 {
			qty = *rec.Qty
		}
		cart = append(cart, domain.LineItem{
			ProductID:   rec.ID,
			Name:        rec.Name,
			Price:       rec.Price,
			Size:        rec.Size,
			Colour:      rec.Colour,
			Composition: rec.Composition,
			Fit:         rec.Fit,
			Image:       rec.Image,
			Quantity:    qty,
		})
	}
	return cart
}
