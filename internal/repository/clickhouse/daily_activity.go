package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// DailyActivity folds every classification table into per-day buckets. Swap
// completes are excluded here; the swap timeline has its own projection.
// Fully shielded and unclassifiable buckets contribute no amount because
// their moved value is unknowable.
func (r *Repository) DailyActivity(ctx context.Context) ([]model.DailyStat, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("daily_activity", err, start)
	}()

	const query = `
SELECT date, tx_type, tx_count, total_fee, total_amount
FROM (
    SELECT toDate(timestamp) AS date, 'coinbase' AS tx_type,
           count() AS tx_count, toInt64(0) AS total_fee, sum(amount) AS total_amount
    FROM coinbase_txs FINAL GROUP BY date
    UNION ALL
    SELECT toDate(timestamp), 'coinbase_shielding', count(), sum(fee), sum(value)
    FROM coinbase_shielding_txs FINAL GROUP BY toDate(timestamp)
    UNION ALL
    SELECT toDate(timestamp), 'dpow', count(), sum(fee), sum(total_out)
    FROM dpow_txs FINAL GROUP BY toDate(timestamp)
    UNION ALL
    SELECT toDate(timestamp), 'atomic_swap', count(), sum(fee), sum(total_out)
    FROM atomic_swap_txs FINAL WHERE phase = 'start' GROUP BY toDate(timestamp)
    UNION ALL
    SELECT toDate(timestamp), 'turnstile', count(), sum(fee), sum(total_out)
    FROM turnstile_txs FINAL GROUP BY toDate(timestamp)
    UNION ALL
    SELECT toDate(timestamp), 'shielded', count(), sum(fee), toInt64(0)
    FROM shielded_txs FINAL GROUP BY toDate(timestamp)
    UNION ALL
    SELECT toDate(timestamp), 'unknown_transparent', count(), sum(fee), sum(total_out)
    FROM unknown_transparent_txs FINAL GROUP BY toDate(timestamp)
    UNION ALL
    SELECT toDate(timestamp), 'unknown', count(), toInt64(0), toInt64(0)
    FROM unknown_txs FINAL GROUP BY toDate(timestamp)
)
ORDER BY date ASC, tx_type ASC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query daily activity: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var stats []model.DailyStat
	for rows.Next() {
		var (
			date        time.Time
			txType      string
			txCount     uint64
			totalFee    int64
			totalAmount int64
		)
		if err = rows.Scan(&date, &txType, &txCount, &totalFee, &totalAmount); err != nil {
			return nil, fmt.Errorf("scan daily activity row: %w", err)
		}
		stats = append(stats, model.DailyStat{
			Date:        date.Format("2006-01-02"),
			TxType:      model.TxType(txType),
			TxCount:     txCount,
			TotalFee:    btcAmount(totalFee),
			TotalAmount: btcAmount(totalAmount),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily activity: %w", err)
	}

	return stats, nil
}
