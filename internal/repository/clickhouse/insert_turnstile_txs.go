package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// InsertTurnstileTxs stores turnstile migration rows.
func (r *Repository) InsertTurnstileTxs(ctx context.Context, txs []model.TurnstileTx) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_turnstile_txs", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO turnstile_txs (
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
		return fmt.Errorf("prepare turnstile batch: %w", err)
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
			return fmt.Errorf("append turnstile tx: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert turnstile txs: %w", err)
	}
	return nil
}
