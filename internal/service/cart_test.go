package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takeout-system/internal/domain"
	"takeout-system/internal/repository"
)

func testMenu() *domain.Menu {
	return &domain.Menu{
		HealthyMeal: domain.HealthySection{Options: map[string]float64{"Salad": 8.00}},
		TodaysSpecial: domain.SpecialSection{
			Meats: map[string]float64{"Chicken": 10.00},
			Sides: []string{"Rice"},
		},
	}
}

func TestCartAddItemHealthy(t *testing.T) {
	cart := NewCart(testMenu())

	item, err := cart.AddItem(domain.HealthyMeal, "Salad", "", "", "0")
	require.NoError(t, err)
	assert.Equal(t, 8.00, item.Price)
	assert.Equal(t, "Salad", item.Details)
	assert.Equal(t, "Salad", item.LookupKey)
	assert.Equal(t, 0.0, item.ExtraPrice)
	assert.Equal(t, 1, cart.Len())
}

func TestCartAddItemSpecial(t *testing.T) {
	cart := NewCart(testMenu())

	item, err := cart.AddItem(domain.TodaysSpecial, "Chicken", "Rice", "extra spicy", "1.50")
	require.NoError(t, err)
	assert.Equal(t, 11.50, item.Price, "base plus extra, exactly")
	assert.Equal(t, "Chicken with Rice", item.Details)
	assert.Equal(t, "Chicken", item.LookupKey)
	assert.Equal(t, "extra spicy", item.Note)
	assert.Equal(t, 1.50, item.ExtraPrice)
}

func TestCartAddItemNegativeExtra(t *testing.T) {
	cart := NewCart(testMenu())

	item, err := cart.AddItem(domain.HealthyMeal, "Salad", "", "loyalty discount", "-2")
	require.NoError(t, err, "negative extras are allowed on purpose")
	assert.Equal(t, 6.00, item.Price)
}

func TestCartAddItemErrors(t *testing.T) {
	tests := []struct {
		name     string
		mealType domain.MealType
		key      string
		side     string
		extra    string
		wantErr  error
	}{
		{"unknown healthy option", domain.HealthyMeal, "Burger", "", "0", domain.ErrUnknownOption},
		{"unknown meat", domain.TodaysSpecial, "Tofu", "Rice", "0", domain.ErrUnknownOption},
		{"unknown side", domain.TodaysSpecial, "Chicken", "Mash", "0", domain.ErrUnknownOption},
		{"unparsable extra", domain.HealthyMeal, "Salad", "", "abc", domain.ErrInvalidExtraPrice},
		{"blank extra", domain.HealthyMeal, "Salad", "", "", domain.ErrInvalidExtraPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart(testMenu())
			_, err := cart.AddItem(tt.mealType, tt.key, tt.side, "", tt.extra)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, cart.Len(), "failed add must not change the cart")
		})
	}
}

func TestCartRemoveAt(t *testing.T) {
	cart := NewCart(testMenu())
	_, err := cart.AddItem(domain.HealthyMeal, "Salad", "", "", "0")
	require.NoError(t, err)
	_, err = cart.AddItem(domain.TodaysSpecial, "Chicken", "Rice", "", "0")
	require.NoError(t, err)

	require.NoError(t, cart.RemoveAt(0))
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Chicken with Rice", items[0].Details, "later items shift down")
}

func TestCartRemoveAtOutOfRange(t *testing.T) {
	cart := NewCart(testMenu())
	_, err := cart.AddItem(domain.HealthyMeal, "Salad", "", "", "0")
	require.NoError(t, err)

	for _, pos := range []int{-1, 1, 10} {
		assert.ErrorIs(t, cart.RemoveAt(pos), domain.ErrOutOfRange, "pos %d", pos)
	}
	assert.Equal(t, 1, cart.Len(), "failed removal leaves the cart unchanged")
}

func TestCartClearIdempotent(t *testing.T) {
	cart := NewCart(testMenu())
	_, err := cart.AddItem(domain.HealthyMeal, "Salad", "", "", "0")
	require.NoError(t, err)

	cart.Clear()
	assert.Zero(t, cart.Len())
	cart.Clear()
	assert.Zero(t, cart.Len())
}

func TestCartToOrderValidation(t *testing.T) {
	cart := NewCart(testMenu())
	_, err := cart.AddItem(domain.HealthyMeal, "Salad", "", "", "0")
	require.NoError(t, err)

	_, err = cart.ToOrder("", "555-1234")
	assert.ErrorIs(t, err, domain.ErrMissingCustomerInfo)
	_, err = cart.ToOrder("Ann", "   ")
	assert.ErrorIs(t, err, domain.ErrMissingCustomerInfo)
	assert.Equal(t, 1, cart.Len(), "failed finalize leaves the cart intact")

	empty := NewCart(testMenu())
	_, err = empty.ToOrder("Ann", "555-1234")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCartToOrderSnapshot(t *testing.T) {
	cart := NewCart(testMenu())
	_, err := cart.AddItem(domain.HealthyMeal, "Salad", "", "", "0")
	require.NoError(t, err)

	order, err := cart.ToOrder("  Ann ", " 555-1234 ")
	require.NoError(t, err)
	assert.Equal(t, "Ann", order.CustomerName, "customer info is trimmed")
	assert.Equal(t, "555-1234", order.Phone)
	assert.Equal(t, domain.StatusPending, order.Status)

	assert.Equal(t, 1, cart.Len(), "ToOrder does not mutate the cart")

	// The snapshot must not track later cart mutations.
	_, err = cart.AddItem(domain.TodaysSpecial, "Chicken", "Rice", "", "0")
	require.NoError(t, err)
	cart.Clear()
	assert.Len(t, order.Meals, 1)
}

func TestCheckoutScenario(t *testing.T) {
	cart := NewCart(testMenu())

	item, err := cart.AddItem(domain.HealthyMeal, "Salad", "", "", "0")
	require.NoError(t, err)
	assert.Equal(t, 8.00, item.Price)

	item, err = cart.AddItem(domain.TodaysSpecial, "Chicken", "Rice", "extra spicy", "1.50")
	require.NoError(t, err)
	assert.Equal(t, 11.50, item.Price)
	assert.Equal(t, "Chicken with Rice", item.Details)

	store := repository.NewOrderStore(filepath.Join(t.TempDir(), "orders.json"))
	placed, err := Checkout(cart, store, "Ann", "555-1234")
	require.NoError(t, err)

	assert.Equal(t, 0, placed.Position)
	assert.Len(t, placed.Order.Meals, 2)
	assert.Equal(t, 19.50, OrderTotal(placed.Order))
	assert.Equal(t, domain.StatusPending, placed.Order.Status)
	assert.Zero(t, cart.Len(), "checkout clears the cart after a successful append")

	loaded, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Ann", loaded[0].CustomerName)
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	cart := NewCart(testMenu())
	_, err := cart.AddItem(domain.HealthyMeal, "Salad", "", "", "0")
	require.NoError(t, err)

	store := repository.NewOrderStore(filepath.Join(t.TempDir(), "orders.json"))
	_, err = Checkout(cart, store, "", "")
	assert.ErrorIs(t, err, domain.ErrMissingCustomerInfo)
	assert.Equal(t, 1, cart.Len())
}
