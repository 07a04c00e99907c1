package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"takeout-system/internal/common/logger"
	"takeout-system/internal/domain"
)

// MenuStore persists the menu catalog as a single JSON document. The store
// assumes exclusive ownership of its file for the life of the process.
type MenuStore struct {
	path string
	lg   *logger.Logger
}

func NewMenuStore(path string) *MenuStore {
	return &MenuStore{path: path, lg: logger.New("menu-store")}
}

// Load reads the saved catalog. A file that has never been saved is a valid
// state (ErrMenuNotFound); a file that exists but is not valid JSON is
// reported as ErrCorruptData so the caller can warn before starting fresh.
func (s *MenuStore) Load() (*domain.Menu, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, domain.ErrMenuNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	var menu domain.Menu
	if err := json.Unmarshal(b, &menu); err != nil {
		return nil, fmt.Errorf("%w: menu file %s: %v", domain.ErrCorruptData, s.path, err)
	}
	return &menu, nil
}

// Save validates the catalog and overwrites the file atomically.
func (s *MenuStore) Save(menu *domain.Menu) error {
	if err := menu.Validate(); err != nil {
		return fmt.Errorf("invalid menu: %w", err)
	}
	b, err := json.MarshalIndent(menu, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal menu: %w", err)
	}
	if err := writeFileAtomic(s.path, b); err != nil {
		return err
	}
	s.lg.Info("menu_saved", map[string]any{
		"path":            s.path,
		"healthy_options": len(menu.HealthyMeal.Options),
		"meats":           len(menu.TodaysSpecial.Meats),
		"sides":           len(menu.TodaysSpecial.Sides),
	})
	return nil
}

// Remove deletes the saved catalog. Missing file counts as removed.
func (s *MenuStore) Remove() error {
	if err := removeIfExists(s.path); err != nil {
		return err
	}
	s.lg.Info("menu_removed", map[string]any{"path": s.path})
	return nil
}
