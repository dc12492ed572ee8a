package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// InsertTransparentTxs stores transparent rows that matched no known pattern.
func (r *Repository) InsertTransparentTxs(ctx context.Context, txs []model.TransparentTx) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transparent_txs", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO unknown_transparent_txs (
	txid,
	block_height,
	timestamp,
	in_addresses,
	out_addresses,
	total_in,
	total_out,
	fee
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transparent batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.TxID,
			tx.BlockHeight,
			tx.Timestamp,
			tx.InAddresses,
			tx.OutAddresses,
			int64(tx.TotalIn),
			int64(tx.TotalOut),
			int64(tx.Fee),
		); err != nil {
			return fmt.Errorf("append transparent tx: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transparent txs: %w", err)
	}
	return nil
}
