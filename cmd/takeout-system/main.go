package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"takeout-system/internal/app/board"
	"takeout-system/internal/app/menusetup"
	"takeout-system/internal/app/order"
	"takeout-system/internal/app/reset"
	"takeout-system/internal/app/summary"
	"takeout-system/internal/common/config"
	"takeout-system/internal/common/logger"
)

func main() {
	mode := flag.String("mode", "", "menu-setup | order | board | summary | reset")
	cfgPath := flag.String("config", "", "path to config.yaml (probed when empty)")
	movePos := flag.Int("move", 0, "board: order number to move (as printed)")
	moveTo := flag.String("to", "", "board: target status for --move")
	yes := flag.Bool("yes", false, "reset: skip the confirmation prompt")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := *cfgPath
	if path == "" {
		if found, err := config.FindConfig(); err == nil {
			path = found
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		lg.Error("config_failed", err, nil)
		os.Exit(1)
	}

	var runErr error
	switch *mode {
	case "menu-setup":
		lg.Info("mode_started", map[string]any{"mode": "menu-setup", "menu_file": cfg.Storage.MenuPath()})
		runErr = menusetup.Run(ctx, cfg.Storage)
	case "order":
		lg.Info("mode_started", map[string]any{"mode": "order", "orders_file": cfg.Storage.OrdersPath()})
		runErr = order.Run(ctx, cfg.Storage)
	case "board":
		if *moveTo != "" && *movePos == 0 {
			fmt.Fprintln(os.Stderr, "--move is required with --to")
			os.Exit(2)
		}
		runErr = board.Run(ctx, cfg.Storage, *movePos, *moveTo)
	case "summary":
		runErr = summary.Run(ctx, cfg.Storage)
	case "reset":
		runErr = reset.Run(ctx, cfg.Storage, *yes)
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: menu-setup | order | board | summary | reset")
		os.Exit(2)
	}
	if runErr != nil {
		lg.Error("fatal", runErr, nil)
		os.Exit(1)
	}
}
