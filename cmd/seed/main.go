package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/database/seeder"
	"portfolio/internal/observability"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "YAML seed document (defaults to the built-in content)")
	reset := flag.Bool("reset", false, "clear skills and projects before inserting")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg, err := config.LoadForSeed()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	// The seeder writes the schema it needs.
	cfg.Database.AutoMigrate = true

	logger, err := observability.NewLogger(cfg.App.AppName+"-seed", cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	content := seeder.DefaultContent()
	if path := strings.TrimSpace(*file); path != "" {
		content, err = seeder.LoadContent(path)
		if err != nil {
			logger.Fatal("failed to load seed content", zap.String("file", path), zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to init container", zap.Error(err))
	}
	defer func() {
		_ = c.Close()
	}()

	r := seeder.Runner{
		Seeders: seeder.Defaults(content, seeder.Options{
			Reset:         *reset,
			AdminUsername: cfg.Admin.Username,
			AdminPassword: cfg.Admin.Password,
		}),
		Logger: logger,
	}
	if c.Cache != nil {
		r.Cache = c.Cache
	}
	if err := r.Run(ctx, c.Storage); err != nil {
		logger.Error("seeding finished with errors", zap.Error(err))
		_ = c.Close()
		os.Exit(1)
	}
	logger.Info("database seeding complete")
}
