package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// OpenSwapAddresses returns swap addresses with a recorded start and no
// complete. The scanner seeds its in-memory swap index from this set so a
// resumed scan can still link completes to starts persisted in earlier runs.
func (r *Repository) OpenSwapAddresses(ctx context.Context) (map[string]struct{}, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("open_swap_addresses", err, start)
	}()

	const query = `
SELECT swap_addr
FROM atomic_swap_txs FINAL
GROUP BY swap_addr
HAVING countIf(phase = 'start') > 0 AND countIf(phase = 'complete') = 0`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query open swap addresses: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	addrs := make(map[string]struct{})
	for rows.Next() {
		var addr string
		if err = rows.Scan(&addr); err != nil {
			return nil, fmt.Errorf("scan swap address: %w", err)
		}
		addrs[addr] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate open swap addresses: %w", err)
	}

	return addrs, nil
}
