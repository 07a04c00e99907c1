package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Storage struct {
	Dir        string `yaml:"dir"`
	MenuFile   string `yaml:"menu_file"`
	OrdersFile string `yaml:"orders_file"`
}

type App struct {
	Storage Storage `yaml:"storage"`
}

// Load reads the YAML config file when path is non-empty, then applies
// environment overrides and defaults. A .env file in the working directory
// is honored when present.
func Load(path string) (App, error) {
	_ = godotenv.Load()

	var a App
	if path != "" {
		b, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return App{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &a); err != nil {
			return App{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := os.Getenv("TAKEOUT_DATA_DIR"); v != "" {
		a.Storage.Dir = v
	}
	if v := os.Getenv("TAKEOUT_MENU_FILE"); v != "" {
		a.Storage.MenuFile = v
	}
	if v := os.Getenv("TAKEOUT_ORDERS_FILE"); v != "" {
		a.Storage.OrdersFile = v
	}

	if a.Storage.Dir == "" {
		a.Storage.Dir = "."
	}
	if a.Storage.MenuFile == "" {
		a.Storage.MenuFile = "menu.json"
	}
	if a.Storage.OrdersFile == "" {
		a.Storage.OrdersFile = "orders.json"
	}
	return a, nil
}

func (s Storage) MenuPath() string   { return filepath.Join(s.Dir, s.MenuFile) }
func (s Storage) OrdersPath() string { return filepath.Join(s.Dir, s.OrdersFile) }

// FindConfig probes the usual config locations. Callers treat absence as
// running on defaults.
func FindConfig() (string, error) {
	candidates := []string{"config.yaml", "deploy/config.example.yaml"}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fs.ErrNotExist
}
