package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// InsertShieldedTxs stores fully shielded transaction rows.
func (r *Repository) InsertShieldedTxs(ctx context.Context, txs []model.ShieldedTx) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_shielded_txs", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO shielded_txs (
	txid,
	block_height,
	timestamp,
	fee
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare shielded batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.TxID,
			tx.BlockHeight,
			tx.Timestamp,
			int64(tx.Fee),
		); err != nil {
			return fmt.Errorf("append shielded tx: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert shielded txs: %w", err)
	}
	return nil
}
