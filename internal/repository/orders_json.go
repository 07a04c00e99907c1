package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"takeout-system/internal/common/logger"
	"takeout-system/internal/domain"
)

// OrderStore persists the finalized-order collection as one JSON array.
// An order's identity is its position in that array; there is no id field
// on disk, so every mutation addresses orders by position.
type OrderStore struct {
	path string
	lg   *logger.Logger
}

func NewOrderStore(path string) *OrderStore {
	return &OrderStore{path: path, lg: logger.New("order-store")}
}

// LoadAll reads the whole collection. A missing file is a first run and
// yields an empty sequence, not an error.
func (s *OrderStore) LoadAll() ([]domain.Order, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []domain.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read orders file: %w", err)
	}
	var orders []domain.Order
	if err := json.Unmarshal(b, &orders); err != nil {
		return nil, fmt.Errorf("%w: orders file %s: %v", domain.ErrCorruptData, s.path, err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// Append adds the order at the end of the collection and persists
// immediately. Returns the updated collection; the new order's position is
// its last index.
func (s *OrderStore) Append(order domain.Order) ([]domain.Order, error) {
	orders, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	orders = append(orders, order)
	if err := s.persist(orders); err != nil {
		return nil, err
	}
	s.lg.Info("order_appended", map[string]any{
		"position": len(orders) - 1,
		"customer": order.CustomerName,
		"meals":    len(order.Meals),
	})
	return orders, nil
}

// ReplaceStatus rewrites the status of the order at pos and persists
// immediately. An out-of-range pos leaves the file untouched.
func (s *OrderStore) ReplaceStatus(pos int, status domain.Status) ([]domain.Order, error) {
	orders, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if pos < 0 || pos >= len(orders) {
		return nil, fmt.Errorf("%w: position %d of %d orders", domain.ErrOutOfRange, pos, len(orders))
	}
	orders[pos].Status = status
	if err := s.persist(orders); err != nil {
		return nil, err
	}
	s.lg.Info("status_replaced", map[string]any{"position": pos, "status": string(status)})
	return orders, nil
}

// Remove deletes the orders file. Missing file counts as removed.
func (s *OrderStore) Remove() error {
	if err := removeIfExists(s.path); err != nil {
		return err
	}
	s.lg.Info("orders_removed", map[string]any{"path": s.path})
	return nil
}

func (s *OrderStore) persist(orders []domain.Order) error {
	b, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}
	return writeFileAtomic(s.path, b)
}
