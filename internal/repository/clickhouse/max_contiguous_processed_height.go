package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// MaxContiguousProcessedHeight returns the highest height such that every
// height from the lowest processed one up to it is marked processed. The
// second return is false when no height was processed yet.
func (r *Repository) MaxContiguousProcessedHeight(ctx context.Context) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_contiguous_processed_height", err, start)
	}()

	const query = `WITH
    (SELECT min(height) FROM processed_blocks) AS base,
    data AS (
        SELECT
            height,
            row_number() OVER (ORDER BY height) - 1 AS rn
        FROM processed_blocks
        GROUP BY height
    )
SELECT max(height) AS max_contiguous_height, count() AS heights
FROM data
WHERE rn = height - base`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return 0, false, fmt.Errorf("query max contiguous processed height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var (
		height uint64
		count  uint64
	)
	if !rows.Next() {
		return 0, false, nil
	}
	if err = rows.Scan(&height, &count); err != nil {
		return 0, false, fmt.Errorf("scan max contiguous processed height: %w", err)
	}
	if count == 0 {
		return 0, false, nil
	}

	return height, true, nil
}
