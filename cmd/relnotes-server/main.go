package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-relnotes/internal/config"
	"github.com/goliatone/go-relnotes/internal/httpapi"
	"github.com/goliatone/go-relnotes/internal/logging"
	"github.com/goliatone/go-relnotes/pkg/generator"
)

func main() {
	configPath := flag.String("config", "", "path to relnotes.yaml (defaults to $CONFIG_PATH)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logging.InitLogger(
		cfg.Logger.File,
		cfg.Logger.MaxSizeMB,
		cfg.Logger.MaxBackups,
		cfg.Logger.MaxAgeDays,
		cfg.Logger.Compress,
		cfg.Logger.Level,
	)

	gen := generator.New(
		generator.WithSanitizer(cfg.Sanitize),
		generator.WithLogger(logging.Logger()),
	)
	app := httpapi.New(gen, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := httpapi.Serve(ctx, app, cfg.Server.Host+cfg.Server.Port); err != nil {
		logging.Error("Server error", "error", err)
		stop()
		os.Exit(1)
	}
}
