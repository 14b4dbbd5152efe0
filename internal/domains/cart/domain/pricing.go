package domain

// Pricing constants for the storefront. Amounts are whole CHF.
const (
	FreeShippingThreshold = 300.0
	ShippingFee           = 9.0
	VATRate               = 0.077
)

// ShippingFor returns the flat delivery fee: waived at or above the
// free-shipping threshold.
func ShippingFor(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

// VATPortion back-calculates the tax share embedded in a tax-inclusive
// total at the standard rate. Display only; it never changes the total.
func VATPortion(total float64) float64 {
	return total * VATRate / (1 + VATRate)
}

// Progress describes how far a subtotal is from free shipping.
type Progress struct {
	Percent   float64
	Remaining float64
	Unlocked  bool
}

// ShippingProgress computes the free-delivery progress for a subtotal.
// Percent is capped at 100.
func ShippingProgress(subtotal float64) Progress {
	pct := subtotal / FreeShippingThreshold * 100
	if pct > 100 {
		pct = 100
	}
	remaining := FreeShippingThreshold - subtotal
	if remaining <= 0 {
		return Progress{Percent: pct, Unlocked: true}
	}
	return Progress{Percent: pct, Remaining: remaining}
}
