package service

import (
	"fmt"

	"takeout-system/internal/common/logger"
	"takeout-system/internal/domain"
	"takeout-system/internal/repository"
)

// PlacedOrder pairs an order with its position in the persisted collection.
// The position is the order's identity while the process runs; hosts use it
// to address moves.
type PlacedOrder struct {
	Position int
	Order    domain.Order
}

// Board is the fulfillment view over the order collection: one lane per
// status, moves persisted through the order store.
type Board struct {
	orders repository.OrderRepositoryInterface
	lg     *logger.Logger
}

func NewBoard(orders repository.OrderRepositoryInterface) *Board {
	return &Board{orders: orders, lg: logger.New("board")}
}

// Transition moves the order at pos to status. Every move between declared
// statuses is legal, including backward ones and the identity move; staff
// undo a mis-drop through the same path as any other move.
func (b *Board) Transition(pos int, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownStatus, status)
	}
	if _, err := b.orders.ReplaceStatus(pos, status); err != nil {
		return err
	}
	b.lg.Info("order_moved", map[string]any{"position": pos, "status": string(status)})
	return nil
}

// Lanes groups the collection by status, preserving collection order within
// each lane. Orders whose stored status is missing or unrecognized land in
// the Pending lane, unchanged on disk.
func (b *Board) Lanes() (map[domain.Status][]PlacedOrder, error) {
	orders, err := b.orders.LoadAll()
	if err != nil {
		return nil, err
	}
	lanes := make(map[domain.Status][]PlacedOrder, len(domain.Statuses))
	for pos, order := range orders {
		lane := order.Status
		if !lane.Valid() {
			lane = domain.StatusPending
		}
		lanes[lane] = append(lanes[lane], PlacedOrder{Position: pos, Order: order})
	}
	return lanes, nil
}
