package service

import (
	"math"

	"luciafood-express/order-svc/internal/domain"
)

// EffectiveUnitPrice resolves the price actually charged for an item: the
// platform override when present, the list price otherwise. The two are never
// combined.
func EffectiveUnitPrice(item domain.MenuItem) float64 {
	if item.PreferredPrice != nil {
		return *item.PreferredPrice
	}
	return item.ListPrice
}

func LineTotal(line domain.CartLine) float64 {
	return EffectiveUnitPrice(line.Item) * float64(line.Quantity)
}

func CartSubtotal(lines []domain.CartLine) float64 {
	var subtotal float64
	for _, line := range lines {
		subtotal += LineTotal(line)
	}
	return subtotal
}

// Round2 is applied only at display and persistence boundaries; intermediate
// arithmetic keeps full float precision.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
