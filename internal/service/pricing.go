package service

import "takeout-system/internal/domain"

// LineItemPrice is the committed price of one line: catalog base price plus
// the ad-hoc extra. No rounding happens here or in storage; hosts round for
// display only, so repeated edits never accumulate drift.
func LineItemPrice(base, extra float64) float64 { return base + extra }

// OrderTotal sums the frozen line prices. An empty order totals zero.
func OrderTotal(order domain.Order) float64 {
	total := 0.0
	for _, meal := range order.Meals {
		total += meal.Price
	}
	return total
}
