package summary

import (
	"context"
	"fmt"

	"takeout-system/internal/common/config"
	"takeout-system/internal/repository"
	"takeout-system/internal/service"
)

// Run prints the sales summary: one line per plate, plates sold, and the
// grand total.
func Run(ctx context.Context, st config.Storage) error {
	orders, err := repository.NewOrderStore(st.OrdersPath()).LoadAll()
	if err != nil {
		return err
	}
	s := service.Summarize(orders)
	for _, line := range s.Lines {
		fmt.Println(line)
	}
	fmt.Printf("\nPlates sold: %d\n", s.PlatesSold)
	fmt.Printf("Total: $%.2f\n", s.Total)
	return nil
}
