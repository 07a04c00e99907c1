package service

import (
	"fmt"
	"strconv"
	"strings"

	"takeout-system/internal/domain"
	"takeout-system/internal/repository"
)

// Cart assembles line items for one in-progress customer order. It is owned
// by a single session, never persisted, and priced against the catalog it
// was created with.
type Cart struct {
	menu  *domain.Menu
	items []domain.LineItem
}

func NewCart(menu *domain.Menu) *Cart { return &Cart{menu: menu} }

// AddItem resolves and freezes one line item. side shapes the special's
// description but never its price, and is ignored for healthy meals.
// extraRaw is the raw user input for the extra cost; negative values are
// allowed, which is how staff apply discounts.
func (c *Cart) AddItem(mealType domain.MealType, key, side, note, extraRaw string) (domain.LineItem, error) {
	extra, err := strconv.ParseFloat(strings.TrimSpace(extraRaw), 64)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("%w: %q", domain.ErrInvalidExtraPrice, extraRaw)
	}
	base, err := c.menu.PriceOf(mealType, key)
	if err != nil {
		return domain.LineItem{}, err
	}

	details := key
	if mealType == domain.TodaysSpecial {
		if !c.menu.HasSide(side) {
			return domain.LineItem{}, fmt.Errorf("%w: side %q", domain.ErrUnknownOption, side)
		}
		details = fmt.Sprintf("%s with %s", key, side)
	}

	item := domain.LineItem{
		MealType:   mealType,
		Details:    details,
		LookupKey:  key,
		Note:       strings.TrimSpace(note),
		ExtraPrice: extra,
		Price:      LineItemPrice(base, extra),
	}
	c.items = append(c.items, item)
	return item, nil
}

// RemoveAt drops the item at pos; later items shift down by one.
func (c *Cart) RemoveAt(pos int) error {
	if pos < 0 || pos >= len(c.items) {
		return fmt.Errorf("%w: item %d of %d", domain.ErrOutOfRange, pos, len(c.items))
	}
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	return nil
}

// Clear empties the cart. Idempotent.
func (c *Cart) Clear() { c.items = nil }

// Items returns a copy of the current line items.
func (c *Cart) Items() []domain.LineItem {
	return append([]domain.LineItem(nil), c.items...)
}

func (c *Cart) Len() int { return len(c.items) }

// Total is the running sum of the cart's frozen line prices.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

// ToOrder snapshots the cart into a new order with the initial status. The
// cart itself is not mutated; clearing after a successful commit is the
// caller's job, which keeps this free of hidden side effects.
func (c *Cart) ToOrder(name, phone string) (domain.Order, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return domain.Order{}, domain.ErrMissingCustomerInfo
	}
	if len(c.items) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}
	return domain.Order{
		CustomerName: name,
		Phone:        phone,
		Meals:        append([]domain.LineItem(nil), c.items...),
		Status:       domain.StatusPending,
	}, nil
}

// Checkout finalizes the cart into a persisted order and clears the cart
// only after the append succeeded. Returns the order with the position it
// landed at.
func Checkout(cart *Cart, orders repository.OrderRepositoryInterface, name, phone string) (PlacedOrder, error) {
	order, err := cart.ToOrder(name, phone)
	if err != nil {
		return PlacedOrder{}, err
	}
	all, err := orders.Append(order)
	if err != nil {
		return PlacedOrder{}, err
	}
	cart.Clear()
	return PlacedOrder{Position: len(all) - 1, Order: order}, nil
}
