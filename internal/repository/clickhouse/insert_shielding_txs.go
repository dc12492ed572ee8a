package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// InsertShieldingTxs stores transparent-to-shielded sweep rows.
func (r *Repository) InsertShieldingTxs(ctx context.Context, txs []model.ShieldingTx) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_shielding_txs", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO coinbase_shielding_txs (
	txid,
	block_height,
	timestamp,
	source,
	in_addresses,
	total_in,
	value,
	fee
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare shielding batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.TxID,
			tx.BlockHeight,
			tx.Timestamp,
			string(tx.Source),
			tx.InAddresses,
			int64(tx.TotalIn),
			int64(tx.Value),
			int64(tx.Fee),
		); err != nil {
			return fmt.Errorf("append shielding tx: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert shielding txs: %w", err)
	}
	return nil
}
