package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// InsertDPoWTxs stores notarization classification rows.
func (r *Repository) InsertDPoWTxs(ctx context.Context, txs []model.DPoWTx) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_dpow_txs", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO dpow_txs (
	txid,
	block_height,
	timestamp,
	notary_name,
	notary_season,
	address,
	total_in,
	total_out,
	fee
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare dpow batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.TxID,
			tx.BlockHeight,
			tx.Timestamp,
			tx.NotaryName,
			tx.NotarySeason,
			tx.Address,
			int64(tx.TotalIn),
			int64(tx.TotalOut),
			int64(tx.Fee),
		); err != nil {
			return fmt.Errorf("append dpow tx: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert dpow txs: %w", err)
	}
	return nil
}
