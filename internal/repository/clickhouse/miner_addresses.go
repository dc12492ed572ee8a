package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// MinerAddresses returns every address that ever received a coinbase reward.
// The scanner seeds its miner set with these on resume.
func (r *Repository) MinerAddresses(ctx context.Context) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("miner_addresses", err, start)
	}()

	const query = `
SELECT address
FROM coinbase_txs FINAL
WHERE address != ''
GROUP BY address`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query miner addresses: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var addrs []string
	for rows.Next() {
		var addr string
		if err = rows.Scan(&addr); err != nil {
			return nil, fmt.Errorf("scan miner address: %w", err)
		}
		addrs = append(addrs, addr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate miner addresses: %w", err)
	}

	return addrs, nil
}
