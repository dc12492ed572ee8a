package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/piratescan/arrr-activity-backend/internal/metrics"
	"github.com/piratescan/arrr-activity-backend/internal/pirate"
	"github.com/piratescan/arrr-activity-backend/internal/registry"
	"github.com/piratescan/arrr-activity-backend/internal/repository/clickhouse"
	"github.com/piratescan/arrr-activity-backend/internal/scanner"
	"github.com/piratescan/arrr-activity-backend/pkg/safe"
)

type config struct {
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"SCANNER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	RPCURL         string        `long:"rpc-url" env:"SCANNER_RPC_URL" description:"Pirate RPC URL" default:"http://127.0.0.1:45453"`
	RPCUser        string        `long:"rpc-user" env:"SCANNER_RPC_USER" description:"Pirate RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"SCANNER_RPC_PASSWORD" description:"Pirate RPC password"`
	RegistryPath   string        `long:"registry" env:"SCANNER_REGISTRY_PATH" description:"path to the chain registry file" default:"registry.json"`
	Start          *int64        `long:"start" env:"SCANNER_START_HEIGHT" description:"first height to scan; prompts when omitted"`
	End            *int64        `long:"end" env:"SCANNER_END_HEIGHT" description:"last height to scan; prompts when omitted"`
	NonInteractive bool          `long:"non-interactive" env:"SCANNER_NON_INTERACTIVE" description:"never prompt; resume from storage and scan to the tip"`
	FlushBlocks    int           `long:"flush-blocks" env:"SCANNER_FLUSH_BLOCKS" description:"blocks per storage flush" default:"100"`
	Retries        int           `long:"retries" env:"SCANNER_RETRIES" description:"attempts per block before giving up" default:"5"`
	RetryDelay     time.Duration `long:"retry-delay" env:"SCANNER_RETRY_DELAY" description:"pause between attempts on the same block" default:"5s"`
	RPS            int           `long:"rps" env:"SCANNER_RPS" description:"node RPC calls per second; zero means unlimited" default:"0"`
	PrevoutCache   int           `long:"prevout-cache" env:"SCANNER_PREVOUT_CACHE" description:"resolver output cache size" default:"20000"`
	MetricsAddr    string        `long:"metrics-addr" env:"SCANNER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
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
		logger.Fatal("scanner failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	node := pirate.NewClient(rpcClient, metrics.NewRPCClient())
	defer node.Shutdown()

	reg, err := registry.Load(cfg.RegistryPath)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}

	svc := scanner.NewService(repo, node, reg, logger, metrics.NewScanner(), scanner.Config{
		FlushBlocks:      cfg.FlushBlocks,
		Retries:          cfg.Retries,
		RetryDelay:       cfg.RetryDelay,
		RPS:              cfg.RPS,
		PrevoutCacheSize: cfg.PrevoutCache,
	})

	start, end, err := resolveRange(ctx, cfg, svc)
	if err != nil {
		return err
	}
	if start > end {
		return fmt.Errorf("start height %d is above end height %d", start, end)
	}

	logger.Info("starting scan", zap.Uint64("start", start), zap.Uint64("end", end))
	return svc.Run(ctx, start, end)
}

// resolveRange settles the scan bounds: explicit flags win, then the stored
// resume point and the node tip, prompting in between unless disabled.
func resolveRange(ctx context.Context, cfg config, svc *scanner.Service) (uint64, uint64, error) {
	resume, found, err := svc.ResumeHeight(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("resolve resume height: %w", err)
	}
	if !found {
		resume = 1
	}

	tip, err := svc.TipHeight(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("resolve tip height: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)

	start := resume
	switch {
	case cfg.Start != nil:
		if start, err = safe.Uint64(*cfg.Start); err != nil {
			return 0, 0, fmt.Errorf("start height: %w", err)
		}
	case !cfg.NonInteractive:
		if start, err = promptHeight(reader, "start height", resume); err != nil {
			return 0, 0, err
		}
	}

	end := tip
	switch {
	case cfg.End != nil:
		if end, err = safe.Uint64(*cfg.End); err != nil {
			return 0, 0, fmt.Errorf("end height: %w", err)
		}
	case !cfg.NonInteractive:
		if end, err = promptHeight(reader, "end height", tip); err != nil {
			return 0, 0, err
		}
	}

	return start, end, nil
}

func promptHeight(reader *bufio.Reader, label string, fallback uint64) (uint64, error) {
	fmt.Printf("%s [%d]: ", label, fallback)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return fallback, nil
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", label, line, err)
	}
	return safe.Uint64(parsed)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}

	return rpcclient.New(cfg, nil)
}
