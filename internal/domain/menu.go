package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Menu is the configured catalog of purchasable options. The JSON layout is
// the persisted menu document: healthy options live under "healthy_meal.name",
// the special's meats and side combos under "todays_special".
type Menu struct {
	HealthyMeal   HealthySection `json:"healthy_meal"`
	TodaysSpecial SpecialSection `json:"todays_special"`
}

type HealthySection struct {
	Options map[string]float64 `json:"name"`
}

type SpecialSection struct {
	Meats map[string]float64 `json:"meats"`
	Sides []string           `json:"sides"`
}

// Validate checks the catalog invariants: every key a non-empty trimmed
// string, every price non-negative. Sides carry no price; blank side labels
// are rejected here, the setup flow filters them out before saving.
func (m *Menu) Validate() error {
	for name, price := range m.HealthyMeal.Options {
		if strings.TrimSpace(name) == "" || strings.TrimSpace(name) != name {
			return fmt.Errorf("healthy option %q: name must be a non-empty trimmed string", name)
		}
		if price < 0 {
			return fmt.Errorf("healthy option %q: negative price %v", name, price)
		}
	}
	for name, price := range m.TodaysSpecial.Meats {
		if strings.TrimSpace(name) == "" || strings.TrimSpace(name) != name {
			return fmt.Errorf("meat %q: name must be a non-empty trimmed string", name)
		}
		if price < 0 {
			return fmt.Errorf("meat %q: negative price %v", name, price)
		}
	}
	for _, side := range m.TodaysSpecial.Sides {
		if strings.TrimSpace(side) == "" || strings.TrimSpace(side) != side {
			return fmt.Errorf("side %q: label must be a non-empty trimmed string", side)
		}
	}
	return nil
}

// PriceOf resolves the base price for a catalog key in the mapping that
// belongs to the meal type.
func (m *Menu) PriceOf(mealType MealType, key string) (float64, error) {
	var table map[string]float64
	switch mealType {
	case HealthyMeal:
		table = m.HealthyMeal.Options
	case TodaysSpecial:
		table = m.TodaysSpecial.Meats
	default:
		return 0, fmt.Errorf("%w: meal type %q", ErrUnknownOption, mealType)
	}
	price, ok := table[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
	return price, nil
}

// HasSide reports whether label is one of the configured side combos.
func (m *Menu) HasSide(label string) bool {
	for _, side := range m.TodaysSpecial.Sides {
		if side == label {
			return true
		}
	}
	return false
}

func (m *Menu) HealthyNames() []string { return sortedKeys(m.HealthyMeal.Options) }
func (m *Menu) MeatNames() []string    { return sortedKeys(m.TodaysSpecial.Meats) }

func sortedKeys(table map[string]float64) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
