package checkout

import (
	"math"

	"github.com/movshovich/scarves-store/internal/cart"
)

// Options are the pricing knobs for an order. Amounts are USD cents.
type Options struct {
	FreeShippingThresholdCents int
	FlatShippingCents          int
	TaxRate                    float64
}

func DefaultOptions() Options {
	return Options{
		FreeShippingThresholdCents: 20000,
		FlatShippingCents:          1500,
		TaxRate:                    0.08,
	}
}

// Totals is the full order arithmetic. The cart drawer shows Subtotal and
// Shipping; the checkout page additionally shows Tax and Total. Both views
// must come from Compute so they can never disagree.
type Totals struct {
	SubtotalCents int
	ShippingCents int
	TaxCents      int
	TotalCents    int
}

// Compute derives the order totals from the cart lines. Shipping is free
// at or above the threshold, and an empty cart never shows a shipping
// charge. Tax is rounded half away from zero on the subtotal.
func Compute(items []cart.Item, opts Options) Totals {
	subtotal := 0
	for _, it := range items {
		subtotal += it.LineTotalCents()
	}

	shipping := 0
	if subtotal > 0 && subtotal < opts.FreeShippingThresholdCents {
		shipping = opts.FlatShippingCents
	}

	tax := int(math.Round(float64(subtotal) * opts.TaxRate))

	return Totals{
		SubtotalCents: subtotal,
		ShippingCents: shipping,
		TaxCents:      tax,
		TotalCents:    subtotal + shipping + tax,
	}
}
