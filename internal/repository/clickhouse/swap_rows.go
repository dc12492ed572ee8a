package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// SwapRows returns the swap timeline, both phases, ordered by time.
func (r *Repository) SwapRows(ctx context.Context) ([]model.SwapRow, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("swap_rows", err, start)
	}()

	const query = `
SELECT txid, toDate(timestamp) AS date, phase, swap_addr, total_out, fee
FROM atomic_swap_txs FINAL
ORDER BY timestamp ASC, txid ASC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query swap rows: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var swaps []model.SwapRow
	for rows.Next() {
		var (
			row      model.SwapRow
			date     time.Time
			phase    string
			totalOut int64
			fee      int64
		)
		if err = rows.Scan(&row.TxID, &date, &phase, &row.SwapAddr, &totalOut, &fee); err != nil {
			return nil, fmt.Errorf("scan swap row: %w", err)
		}
		row.Date = date.Format("2006-01-02")
		row.Phase = model.SwapPhase(phase)
		row.TotalOut = btcAmount(totalOut)
		row.Fee = btcAmount(fee)
		swaps = append(swaps, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate swap rows: %w", err)
	}

	return swaps, nil
}
