package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// ProcessedHeights returns the set of processed heights inside [from, to].
// The scanner skips these on resume instead of refetching the blocks.
func (r *Repository) ProcessedHeights(ctx context.Context, from, to uint64) (map[uint64]struct{}, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("processed_heights", err, start)
	}()

	const query = `
SELECT height
FROM processed_blocks
WHERE height BETWEEN ? AND ?
GROUP BY height`

	rows, err := r.conn.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query processed heights: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	heights := make(map[uint64]struct{})
	for rows.Next() {
		var height uint64
		if err = rows.Scan(&height); err != nil {
			return nil, fmt.Errorf("scan processed height: %w", err)
		}
		heights[height] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate processed heights: %w", err)
	}

	return heights, nil
}
