package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// InsertCoinbaseTxs stores coinbase classification rows.
func (r *Repository) InsertCoinbaseTxs(ctx context.Context, txs []model.CoinbaseTx) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_coinbase_txs", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO coinbase_txs (
	txid,
	block_height,
	timestamp,
	address,
	amount,
	pool_name
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare coinbase batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.TxID,
			tx.BlockHeight,
			tx.Timestamp,
			tx.Address,
			int64(tx.Amount),
			tx.PoolName,
		); err != nil {
			return fmt.Errorf("append coinbase tx: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert coinbase txs: %w", err)
	}
	return nil
}
