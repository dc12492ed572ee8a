package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/piratescan/arrr-activity-backend/internal/export"
	"github.com/piratescan/arrr-activity-backend/internal/metrics"
	"github.com/piratescan/arrr-activity-backend/internal/registry"
	"github.com/piratescan/arrr-activity-backend/internal/repository/clickhouse"
)

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"SITEGEN_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	RegistryPath  string `long:"registry" env:"SITEGEN_REGISTRY_PATH" description:"path to the chain registry file" default:"registry.json"`
	OutDir        string `long:"out-dir" env:"SITEGEN_OUT_DIR" description:"directory the JSON snapshots are written to" default:"site"`
	Workers       int    `long:"workers" env:"SITEGEN_WORKERS" description:"concurrent snapshot writers" default:"4"`
	MaxPoints     int    `long:"max-points" env:"SITEGEN_MAX_POINTS" description:"maximum chart points per series" default:"180"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("site generation failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	reg, err := registry.Load(cfg.RegistryPath)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}

	exporter := export.NewExporter(repo, reg, logger, export.Config{
		OutDir:    cfg.OutDir,
		Workers:   cfg.Workers,
		MaxPoints: cfg.MaxPoints,
	})
	return exporter.Run(ctx)
}
