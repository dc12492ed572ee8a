package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// MinerStats aggregates coinbase rows per recipient address. Names are
// resolved by the caller against the pool registry.
func (r *Repository) MinerStats(ctx context.Context) ([]model.MinerStat, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("miner_stats", err, start)
	}()

	const query = `
SELECT
	address,
	min(timestamp) AS first_seen,
	max(timestamp) AS last_seen,
	sum(amount) AS total_amount,
	count() AS tx_count
FROM coinbase_txs FINAL
WHERE address != ''
GROUP BY address
ORDER BY total_amount DESC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query miner stats: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var stats []model.MinerStat
	for rows.Next() {
		var (
			stat        model.MinerStat
			totalAmount int64
		)
		if err = rows.Scan(&stat.Address, &stat.FirstSeen, &stat.LastSeen, &totalAmount, &stat.TxCount); err != nil {
			return nil, fmt.Errorf("scan miner stat: %w", err)
		}
		stat.TotalAmount = btcAmount(totalAmount)
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate miner stats: %w", err)
	}

	return stats, nil
}
