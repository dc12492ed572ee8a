package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// InsertDailyStats rewrites the daily aggregate rows. The table replaces by
// (date, tx_type) with the freshest generated_at winning, so regenerating the
// whole history is safe.
func (r *Repository) InsertDailyStats(ctx context.Context, stats []model.DailyStat) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_daily_stats", err, start)
	}()

	if len(stats) == 0 {
		return nil
	}

	const query = `
INSERT INTO daily_stats (
	date,
	tx_type,
	tx_count,
	total_fee,
	total_amount,
	generated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare daily stats batch: %w", err)
	}

	generatedAt := time.Now().UTC()
	for _, stat := range stats {
		date, parseErr := time.Parse("2006-01-02", stat.Date)
		if parseErr != nil {
			err = fmt.Errorf("parse stat date %q: %w", stat.Date, parseErr)
			return err
		}
		if err = batch.Append(
			date,
			string(stat.TxType),
			stat.TxCount,
			int64(stat.TotalFee),
			int64(stat.TotalAmount),
			generatedAt,
		); err != nil {
			return fmt.Errorf("append daily stat: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert daily stats: %w", err)
	}
	return nil
}
