package handlers

import (
	"github.com/movshovich/scarves-store/internal/cart"
	"github.com/movshovich/scarves-store/pkg/view"
)

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func cartLines(items []cart.Item) []view.CartLine {
	out := make([]view.CartLine, 0, len(items))
	for _, it := range items {
		out = append(out, view.CartLine{
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			ProductSlug: it.Product.Slug,
			Background:  it.Product.Background,
			VariantID:   it.Variant.ID,
			Size:        it.Variant.Size,
			Qty:         it.Quantity,
			UnitPrice:   view.MoneyFromCents(it.Product.PriceCents),
			LineTotal:   view.MoneyFromCents(it.LineTotalCents()),
		})
	}
	return out
}
