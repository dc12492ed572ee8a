package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// NotaryStats aggregates notarization rows per notary address.
func (r *Repository) NotaryStats(ctx context.Context) ([]model.NotaryStat, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("notary_stats", err, start)
	}()

	const query = `
SELECT
	address,
	anyLast(notary_name) AS name,
	count() AS tx_count,
	sum(total_out) AS total_out,
	sum(fee) AS total_fee,
	max(timestamp) AS last_seen
FROM dpow_txs FINAL
GROUP BY address
ORDER BY tx_count DESC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query notary stats: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var stats []model.NotaryStat
	for rows.Next() {
		var (
			stat     model.NotaryStat
			totalOut int64
			totalFee int64
		)
		if err = rows.Scan(&stat.Address, &stat.Name, &stat.TxCount, &totalOut, &totalFee, &stat.LastSeen); err != nil {
			return nil, fmt.Errorf("scan notary stat: %w", err)
		}
		stat.TotalOut = btcAmount(totalOut)
		stat.TotalFee = btcAmount(totalFee)
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notary stats: %w", err)
	}

	return stats, nil
}
