// Package export renders the aggregated activity into the JSON snapshots the
// static site serves. Every run rewrites the full set of files, so a snapshot
// directory is always internally consistent.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/piratescan/arrr-activity-backend/internal/aggregator"
	"github.com/piratescan/arrr-activity-backend/internal/model"
	"github.com/piratescan/arrr-activity-backend/pkg/workerpool"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Repository loads the persisted rows the snapshots are built from and
// receives the regenerated daily stats.
type Repository interface {
	DailyActivity(ctx context.Context) ([]model.DailyStat, error)
	InsertDailyStats(ctx context.Context, stats []model.DailyStat) error
	SwapRows(ctx context.Context) ([]model.SwapRow, error)
	MinerStats(ctx context.Context) ([]model.MinerStat, error)
	NotaryStats(ctx context.Context) ([]model.NotaryStat, error)
}

// Pools resolves a coinbase payout address to its mining pool name.
type Pools interface {
	PoolName(addr string) (string, bool)
}

type Config struct {
	OutDir    string
	Workers   int
	MaxPoints int
}

func DefaultConfig() Config {
	return Config{
		OutDir:    "site",
		Workers:   4,
		MaxPoints: 180,
	}
}

type Exporter struct {
	repo   Repository
	pools  Pools
	logger *zap.Logger
	cfg    Config
}

func NewExporter(repo Repository, pools Pools, logger *zap.Logger, cfg Config) *Exporter {
	if cfg.Workers <= 0 || cfg.MaxPoints <= 0 || cfg.OutDir == "" {
		cfg = DefaultConfig()
	}
	return &Exporter{
		repo:   repo,
		pools:  pools,
		logger: logger,
		cfg:    cfg,
	}
}

type meta struct {
	GeneratedAt string `json:"generated_at"`
	Timeframe   string `json:"timeframe,omitempty"`
}

type activityFile struct {
	Meta    meta               `json:"meta"`
	Summary aggregator.Summary `json:"summary"`
	Series  []aggregator.Bucket `json:"series"`
}

type swapsFile struct {
	Meta    meta                   `json:"meta"`
	Summary aggregator.SwapSummary `json:"summary"`
	Swaps   []aggregator.Swap      `json:"swaps"`
}

type minerEntry struct {
	Address         string  `json:"address"`
	Name            string  `json:"name"`
	BlocksMined     uint64  `json:"blocks_mined"`
	TotalARRR       float64 `json:"total_arrr"`
	AvgARRRPerBlock float64 `json:"avg_arrr_per_block"`
	FirstSeen       string  `json:"first_seen"`
	LastSeen        string  `json:"last_seen"`
}

type minersFile struct {
	Meta   meta         `json:"meta"`
	Miners []minerEntry `json:"miners"`
}

type notaryEntry struct {
	Address   string  `json:"address"`
	Name      string  `json:"name"`
	TxCount   uint64  `json:"tx_count"`
	TotalARRR float64 `json:"total_arrr"`
	TotalFee  float64 `json:"total_fee"`
	LastSeen  string  `json:"last_seen"`
}

type notariesFile struct {
	Meta     meta          `json:"meta"`
	Notaries []notaryEntry `json:"notaries"`
}

// Run loads all persisted activity, regenerates the daily stats table and
// writes the full snapshot set into the output directory.
func (e *Exporter) Run(ctx context.Context) error {
	stats, err := e.repo.DailyActivity(ctx)
	if err != nil {
		return fmt.Errorf("failed to load daily activity: %w", err)
	}
	if err := e.repo.InsertDailyStats(ctx, stats); err != nil {
		return fmt.Errorf("failed to store daily stats: %w", err)
	}
	days := aggregator.Fold(stats)

	rows, err := e.repo.SwapRows(ctx)
	if err != nil {
		return fmt.Errorf("failed to load swap rows: %w", err)
	}
	swaps := aggregator.PairSwaps(rows)

	if err := os.MkdirAll(e.cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	generatedAt := time.Now().UTC().Format(time.RFC3339)

	err = workerpool.Process(ctx, e.cfg.Workers, aggregator.Timeframes,
		func(ctx context.Context, tf aggregator.Timeframe) error {
			if err := e.writeActivity(tf, days, generatedAt); err != nil {
				return err
			}
			return e.writeSwaps(tf, swaps, generatedAt)
		}, nil)
	if err != nil {
		return err
	}

	if err := e.writeMiners(ctx, generatedAt); err != nil {
		return err
	}
	if err := e.writeNotaries(ctx, generatedAt); err != nil {
		return err
	}

	e.logger.Info("snapshot export finished",
		zap.Int("days", len(days)),
		zap.Int("swaps", len(swaps)),
		zap.String("out_dir", e.cfg.OutDir))
	return nil
}

func (e *Exporter) writeActivity(tf aggregator.Timeframe, days []aggregator.Day, generatedAt string) error {
	window := aggregator.SliceDays(days, tf.Days)
	file := activityFile{
		Meta:    meta{GeneratedAt: generatedAt, Timeframe: tf.Name},
		Summary: aggregator.Summarize(window),
		Series:  aggregator.BucketActivity(window, e.cfg.MaxPoints),
	}
	return e.writeJSON(fmt.Sprintf("activity_%s.json", tf.Name), file)
}

func (e *Exporter) writeSwaps(tf aggregator.Timeframe, swaps []aggregator.Swap, generatedAt string) error {
	window := aggregator.SliceSwaps(swaps, tf.Days)
	if window == nil {
		window = []aggregator.Swap{}
	}
	file := swapsFile{
		Meta:    meta{GeneratedAt: generatedAt, Timeframe: tf.Name},
		Summary: aggregator.SummarizeSwaps(window),
		Swaps:   window,
	}
	return e.writeJSON(fmt.Sprintf("swaps_%s.json", tf.Name), file)
}

func (e *Exporter) writeMiners(ctx context.Context, generatedAt string) error {
	stats, err := e.repo.MinerStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load miner stats: %w", err)
	}

	miners := make([]minerEntry, 0, len(stats))
	for _, stat := range stats {
		total := stat.TotalAmount.ToBTC()
		avg := 0.0
		if stat.TxCount > 0 {
			avg = total / float64(stat.TxCount)
		}
		miners = append(miners, minerEntry{
			Address:         stat.Address,
			Name:            e.minerName(stat.Address),
			BlocksMined:     stat.TxCount,
			TotalARRR:       total,
			AvgARRRPerBlock: avg,
			FirstSeen:       stat.FirstSeen.UTC().Format(time.RFC3339),
			LastSeen:        stat.LastSeen.UTC().Format(time.RFC3339),
		})
	}

	return e.writeJSON("miners.json", minersFile{
		Meta:   meta{GeneratedAt: generatedAt},
		Miners: miners,
	})
}

func (e *Exporter) writeNotaries(ctx context.Context, generatedAt string) error {
	stats, err := e.repo.NotaryStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notary stats: %w", err)
	}

	notaries := make([]notaryEntry, 0, len(stats))
	for _, stat := range stats {
		notaries = append(notaries, notaryEntry{
			Address:   stat.Address,
			Name:      stat.Name,
			TxCount:   stat.TxCount,
			TotalARRR: stat.TotalOut.ToBTC(),
			TotalFee:  stat.TotalFee.ToBTC(),
			LastSeen:  stat.LastSeen.UTC().Format(time.RFC3339),
		})
	}

	return e.writeJSON("notaries_stats.json", notariesFile{
		Meta:     meta{GeneratedAt: generatedAt},
		Notaries: notaries,
	})
}

// minerName prefers the registered pool name and falls back to a shortened
// address for solo miners.
func (e *Exporter) minerName(addr string) string {
	if name, ok := e.pools.PoolName(addr); ok {
		return name
	}
	if len(addr) > 12 {
		return addr[:6] + "..." + addr[len(addr)-4:]
	}
	return addr
}

func (e *Exporter) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(e.cfg.OutDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	e.logger.Debug("snapshot written", zap.String("file", name))
	return nil
}
