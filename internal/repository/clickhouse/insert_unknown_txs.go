package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// InsertUnknownTxs stores rows for transactions that could not be classified.
func (r *Repository) InsertUnknownTxs(ctx context.Context, txs []model.UnknownTx) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_unknown_txs", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO unknown_txs (
	txid,
	block_height,
	timestamp,
	note
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare unknown batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.TxID,
			tx.BlockHeight,
			tx.Timestamp,
			tx.Note,
		); err != nil {
			return fmt.Errorf("append unknown tx: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert unknown txs: %w", err)
	}
	return nil
}
