package board

import (
	"context"
	"fmt"

	"takeout-system/internal/common/config"
	"takeout-system/internal/common/logger"
	"takeout-system/internal/domain"
	"takeout-system/internal/repository"
	"takeout-system/internal/service"
)

// Run prints the board lanes. When moveTo is non-empty it first moves the
// order numbered movePos (1-based, as printed) to that status; a drag on
// the original board reduces to exactly this one transition.
func Run(ctx context.Context, st config.Storage, movePos int, moveTo string) error {
	lg := logger.New("board")
	b := service.NewBoard(repository.NewOrderStore(st.OrdersPath()))

	if moveTo != "" {
		if err := b.Transition(movePos-1, domain.Status(moveTo)); err != nil {
			lg.Error("move_failed", err, map[string]any{"position": movePos, "status": moveTo})
			return err
		}
	}

	lanes, err := b.Lanes()
	if err != nil {
		return err
	}
	for _, status := range domain.Statuses {
		fmt.Printf("=== %s ===\n", status)
		for _, placed := range lanes[status] {
			o := placed.Order
			fmt.Printf("[%d] %s – %d meals ($%.2f)\n",
				placed.Position+1, o.CustomerName, len(o.Meals), service.OrderTotal(o))
			fmt.Printf("    Phone: %s\n", o.Phone)
			for _, meal := range o.Meals {
				line := fmt.Sprintf("    - %s: %s ($%.2f)", meal.MealType, meal.Details, meal.Price)
				if meal.Note != "" {
					line += fmt.Sprintf(" [Note: %s]", meal.Note)
				}
				fmt.Println(line)
			}
		}
		fmt.Println()
	}
	return nil
}
