package reset

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"takeout-system/internal/common/config"
	"takeout-system/internal/repository"
	"takeout-system/internal/service"
)

// Run clears the order log and the saved menu after confirmation.
func Run(ctx context.Context, st config.Storage, assumeYes bool) error {
	if !assumeYes {
		fmt.Print("This will clear all orders and the saved menu. Proceed? [y/N]: ")
		sc := bufio.NewScanner(os.Stdin)
		if !sc.Scan() || strings.ToLower(strings.TrimSpace(sc.Text())) != "y" {
			fmt.Println("Reset aborted.")
			return nil
		}
	}
	menus := repository.NewMenuStore(st.MenuPath())
	orders := repository.NewOrderStore(st.OrdersPath())
	if err := service.Reset(menus, orders); err != nil {
		return err
	}
	fmt.Println("Menu and orders have been cleared.")
	return nil
}
