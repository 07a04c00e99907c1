package service

import (
	"takeout-system/internal/common/logger"
	"takeout-system/internal/repository"
)

// Reset deletes both persisted files. This is a compound operation on
// purpose: the user-facing reset clears the order log and the saved menu
// together. Missing files count as already cleared.
func Reset(menus repository.MenuRepositoryInterface, orders repository.OrderRepositoryInterface) error {
	if err := orders.Remove(); err != nil {
		return err
	}
	if err := menus.Remove(); err != nil {
		return err
	}
	logger.New("reset").Info("reset_done", nil)
	return nil
}
