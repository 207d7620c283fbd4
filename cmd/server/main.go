package main

import (
	"context"
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"

	"github.com/moneta-app/moneta/infra/initializer"
	"github.com/moneta-app/moneta/pkg/app"
	"github.com/moneta-app/moneta/pkg/config"
	"github.com/moneta-app/moneta/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	// Create the application
	a := app.New(deps, cfg)

	// Schedule the daily inflation scan
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Inflation.ScanCron, func() {
		a.InflationService.Scan(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule inflation scan: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup Fiber app with all routes and middleware
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scan_cron", cfg.Inflation.ScanCron,
	)

	return fiberApp.Listen(addr)
}
