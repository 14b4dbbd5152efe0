package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wollylully/storefront/internal/domains/cart/domain"
)

func TestDecodeCart_CorruptPayloadYieldsEmptyCart(t *testing.T) {
	assert.Empty(t, decodeCart([]byte(`{"not":"a list"`)))
	assert.Empty(t, decodeCart([]byte(`garbage`)))
	assert.Empty(t, decodeCart(nil))
	assert.Empty(t, decodeCart([]byte(`[]`)))
}

func TestDecodeCart_IgnoresUnknownFieldsAndDefaultsQuantity(t *testing.T) {
	payload := []byte(`[
		{"id":"a","name":"Crewneck","price":285,"size":"M","colour":"navy","legacyField":true},
		{"id":"b","name":"Beanie","price":185,"size":"One Size","qty":0},
		{"id":"c","name":"Scarf","price":95,"size":"One Size","qty":3}
	]`)
	cart := decodeCart(payload)
	require.Len(t, cart, 3)
	assert.Equal(t, 1, cart[0].Quantity, "missing qty defaults to 1")
	assert.Equal(t, 1, cart[1].Quantity, "non-positive qty defaults to 1")
	assert.Equal(t, 3, cart[2].Quantity)
}

func TestEncodeDecode_PreservesOrderAndIdentity(t *testing.T) {
	cart := domain.Cart{
		{ProductID: "a", Size: "M", Name: "Crewneck", Price: 285, Colour: "navy", Composition: "cashmere", Fit: "Classic Fit", Quantity: 2},
		{ProductID: "b", Size: "S", Name: "Beanie", Price: 185, Colour: "grey", Quantity: 1, Image: "imgs/beanie.png"},
	}
	payload, err := encodeCart(cart)
	require.NoError(t, err)

	loaded := decodeCart(payload)
	require.Len(t, loaded, 2)
	assert.Equal(t, cart, loaded)
}
