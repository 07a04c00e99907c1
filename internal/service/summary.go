package service

import (
	"fmt"

	"takeout-system/internal/domain"
)

// SalesSummary is the aggregate view of all finalized orders: one rendered
// line per plate, the grand total, and the number of plates sold.
type SalesSummary struct {
	Lines      []string
	Total      float64
	PlatesSold int
}

// Summarize renders the sales summary. Prices are rounded to two decimals
// for display only; Total keeps full precision.
func Summarize(orders []domain.Order) SalesSummary {
	var s SalesSummary
	for pos, order := range orders {
		for _, meal := range order.Meals {
			line := fmt.Sprintf("%d. %s - %s: %s ($%.2f)",
				pos+1, order.CustomerName, meal.MealType, meal.Details, meal.Price)
			if meal.Note != "" {
				line += fmt.Sprintf(" [Note: %s (+$%.2f)]", meal.Note, meal.ExtraPrice)
			}
			s.Lines = append(s.Lines, line)
			s.Total += meal.Price
			s.PlatesSold++
		}
	}
	return s
}
