package order

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"takeout-system/internal/common/config"
	"takeout-system/internal/common/logger"
	"takeout-system/internal/domain"
	"takeout-system/internal/repository"
	"takeout-system/internal/service"
)

// Run drives the order form: load the catalog, collect customer info,
// assemble a cart, and commit it as a pending order.
func Run(ctx context.Context, st config.Storage) error {
	lg := logger.New("order-form")

	menu, err := repository.NewMenuStore(st.MenuPath()).Load()
	switch {
	case errors.Is(err, domain.ErrCorruptData):
		// Warn and treat as not configured rather than pricing against bad data.
		lg.Error("menu_corrupt", err, nil)
		fmt.Println("Saved menu is corrupt. Run --mode menu-setup to rebuild it.")
		return nil
	case errors.Is(err, domain.ErrMenuNotFound):
		fmt.Println("No menu configured yet. Run --mode menu-setup first.")
		return nil
	case err != nil:
		return err
	}

	sc := bufio.NewScanner(os.Stdin)
	name := promptLine(sc, "Customer name: ")
	phone := promptLine(sc, "Phone number: ")

	cart := service.NewCart(menu)
	orders := repository.NewOrderStore(st.OrdersPath())

	for {
		fmt.Printf("Cart: %d meals, $%.2f. (a)dd meal, (r)emove meal, (d)one, (c)ancel: ", cart.Len(), cart.Total())
		if !sc.Scan() {
			return sc.Err()
		}
		switch strings.TrimSpace(sc.Text()) {
		case "a":
			if err := addMeal(sc, cart, menu); err != nil {
				fmt.Println(err)
			}
		case "r":
			printCart(cart)
			pos, err := strconv.Atoi(promptLine(sc, "Remove item number: "))
			if err != nil {
				fmt.Println("enter an item number")
				continue
			}
			if err := cart.RemoveAt(pos - 1); err != nil {
				fmt.Println(err)
			}
		case "d":
			placed, err := service.Checkout(cart, orders, name, phone)
			if err != nil {
				// Cart stays intact so the user can correct and retry.
				fmt.Println(err)
				continue
			}
			fmt.Printf("Order for %s added. Total: $%.2f\n",
				placed.Order.CustomerName, service.OrderTotal(placed.Order))
			return nil
		case "c":
			cart.Clear()
			fmt.Println("Order canceled.")
			return nil
		}
	}
}

func addMeal(sc *bufio.Scanner, cart *service.Cart, menu *domain.Menu) error {
	var mealType domain.MealType
	var key, side string
	switch promptLine(sc, "Meal type - (h)ealthy meal or (s)pecial: ") {
	case "h":
		mealType = domain.HealthyMeal
		fmt.Println("Options:", strings.Join(menu.HealthyNames(), ", "))
		key = promptLine(sc, "Option: ")
	case "s":
		mealType = domain.TodaysSpecial
		fmt.Println("Meats:", strings.Join(menu.MeatNames(), ", "))
		key = promptLine(sc, "Meat: ")
		fmt.Println("Sides:", strings.Join(menu.TodaysSpecial.Sides, ", "))
		side = promptLine(sc, "Side combo: ")
	default:
		return errors.New("pick h or s")
	}
	note := promptLine(sc, "Notes (e.g. extra meat): ")
	extra := promptLine(sc, "Extra cost ($): ")
	if extra == "" {
		extra = "0"
	}
	item, err := cart.AddItem(mealType, key, side, note, extra)
	if err != nil {
		return err
	}
	fmt.Printf("Added %s ($%.2f)\n", item.Details, item.Price)
	return nil
}

func printCart(cart *service.Cart) {
	for i, item := range cart.Items() {
		fmt.Printf("%d. %s: %s ($%.2f)\n", i+1, item.MealType, item.Details, item.Price)
	}
}

func promptLine(sc *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}
