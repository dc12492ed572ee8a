package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// InsertAtomicSwapTxs stores swap rows. Start and complete phases are
// independent rows keyed by (txid, phase) and paired by swap_addr at read
// time, so completing a swap never rewrites its start.
func (r *Repository) InsertAtomicSwapTxs(ctx context.Context, txs []model.SwapTx) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_atomic_swap_txs", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO atomic_swap_txs (
	txid,
	block_height,
	timestamp,
	phase,
	swap_addr,
	complete_txid,
	in_addresses,
	out_addresses,
	total_in,
	total_out,
	fee
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare atomic swap batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.TxID,
			tx.BlockHeight,
			tx.Timestamp,
			string(tx.Phase),
			tx.SwapAddr,
			tx.CompleteTxID,
			tx.InAddresses,
			tx.OutAddresses,
			int64(tx.TotalIn),
			int64(tx.TotalOut),
			int64(tx.Fee),
		); err != nil {
			return fmt.Errorf("append atomic swap tx: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert atomic swap txs: %w", err)
	}
	return nil
}
