// Package currency formats CHF amounts the way the storefront displays
// them: whole units everywhere except the VAT line.
package currency

import "fmt"

// Code is the fixed display currency.
const Code = "CHF"

// Amount renders a whole-unit amount, e.g. "CHF 285".
func Amount(value float64) string {
	return fmt.Sprintf("%s %.0f", Code, value)
}

// AmountOrFree renders "Free" for a zero amount, otherwise the amount.
func AmountOrFree(value float64) string {
	if value == 0 {
		return "Free"
	}
	return Amount(value)
}

// VAT renders a tax amount with two decimal places, e.g. "CHF 7.80".
func VAT(value float64) string {
	return fmt.Sprintf("%s %.2f", Code, value)
}
