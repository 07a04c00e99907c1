package menusetup

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"takeout-system/internal/common/config"
	"takeout-system/internal/common/logger"
	"takeout-system/internal/domain"
	"takeout-system/internal/repository"
)

// Run drives the menu setup flow: collect priced healthy options, priced
// meats, and side combo labels, then validate and save the catalog.
func Run(ctx context.Context, st config.Storage) error {
	lg := logger.New("menu-setup")
	sc := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	fmt.Fprintln(out, "Healthy meal options (name = price), blank line to finish:")
	healthy, err := readPriced(sc, out)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Today's special meats (name = price), blank line to finish:")
	meats, err := readPriced(sc, out)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Side combos (one label per line), blank line to finish:")
	sides, err := readLabels(sc, out)
	if err != nil {
		return err
	}

	menu := &domain.Menu{
		HealthyMeal:   domain.HealthySection{Options: healthy},
		TodaysSpecial: domain.SpecialSection{Meats: meats, Sides: sides},
	}
	if err := repository.NewMenuStore(st.MenuPath()).Save(menu); err != nil {
		lg.Error("menu_save_failed", err, nil)
		return err
	}
	fmt.Fprintln(out, "Menu saved successfully.")
	return nil
}

func readPriced(sc *bufio.Scanner, out io.Writer) (map[string]float64, error) {
	entries := map[string]float64{}
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			return entries, sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			return entries, nil
		}
		name, priceRaw, ok := strings.Cut(line, "=")
		if !ok {
			fmt.Fprintln(out, "expected: name = price")
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(priceRaw), 64)
		if err != nil || price < 0 {
			fmt.Fprintln(out, "price must be a non-negative number")
			continue
		}
		entries[strings.TrimSpace(name)] = price
	}
}

func readLabels(sc *bufio.Scanner, out io.Writer) ([]string, error) {
	var labels []string
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			return labels, sc.Err()
		}
		label := strings.TrimSpace(sc.Text())
		if label == "" {
			return labels, nil
		}
		labels = append(labels, label)
	}
}
