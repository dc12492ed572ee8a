package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// InsertProcessedBlocks marks heights as fully persisted. Callers must only
// mark a height after every classification row of that block was sent.
func (r *Repository) InsertProcessedBlocks(ctx context.Context, blocks []model.ProcessedBlock) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_processed_blocks", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	const query = `
INSERT INTO processed_blocks (
	height,
	timestamp
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare processed blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			block.Height,
			block.Timestamp,
		); err != nil {
			return fmt.Errorf("append processed block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert processed blocks: %w", err)
	}
	return nil
}
