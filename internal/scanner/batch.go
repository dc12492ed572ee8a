package scanner

import (
	"context"
	"fmt"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// batch accumulates classification rows across blocks until a flush.
// Processed-block markers ride along and are inserted last, so the marker for
// a height exists only if all of its rows do.
type batch struct {
	coinbase    []model.CoinbaseTx
	shielding   []model.ShieldingTx
	dpow        []model.DPoWTx
	swaps       []model.SwapTx
	turnstile   []model.TurnstileTx
	shielded    []model.ShieldedTx
	transparent []model.TransparentTx
	unknown     []model.UnknownTx
	processed   []model.ProcessedBlock
}

func (b *batch) add(c model.Classification) error {
	switch c.Type {
	case model.TxTypeCoinbase:
		b.coinbase = append(b.coinbase, *c.Coinbase)
	case model.TxTypeCoinbaseShielding:
		b.shielding = append(b.shielding, *c.Shielding)
	case model.TxTypeDPoW:
		b.dpow = append(b.dpow, *c.DPoW)
	case model.TxTypeAtomicSwap, model.TxTypeAtomicSwapComplete:
		b.swaps = append(b.swaps, *c.Swap)
	case model.TxTypeTurnstile:
		b.turnstile = append(b.turnstile, *c.Turnstile)
	case model.TxTypeShielded:
		b.shielded = append(b.shielded, *c.Shielded)
	case model.TxTypeUnknownTransparent:
		b.transparent = append(b.transparent, *c.Transparent)
	case model.TxTypeUnknown:
		b.unknown = append(b.unknown, *c.Unknown)
	default:
		return fmt.Errorf("unhandled classification type %q", c.Type)
	}
	return nil
}

func (b *batch) markProcessed(block model.ProcessedBlock) {
	b.processed = append(b.processed, block)
}

func (b *batch) txCount() int {
	return len(b.coinbase) + len(b.shielding) + len(b.dpow) + len(b.swaps) +
		len(b.turnstile) + len(b.shielded) + len(b.transparent) + len(b.unknown)
}

func (b *batch) blockCount() int {
	return len(b.processed)
}

// flush persists every accumulated row, processed markers last.
func (b *batch) flush(ctx context.Context, repo Repository) error {
	if len(b.coinbase) > 0 {
		if err := repo.InsertCoinbaseTxs(ctx, b.coinbase); err != nil {
			return fmt.Errorf("batch insert coinbase txs: %w", err)
		}
	}
	if len(b.shielding) > 0 {
		if err := repo.InsertShieldingTxs(ctx, b.shielding); err != nil {
			return fmt.Errorf("batch insert shielding txs: %w", err)
		}
	}
	if len(b.dpow) > 0 {
		if err := repo.InsertDPoWTxs(ctx, b.dpow); err != nil {
			return fmt.Errorf("batch insert dpow txs: %w", err)
		}
	}
	if len(b.swaps) > 0 {
		if err := repo.InsertAtomicSwapTxs(ctx, b.swaps); err != nil {
			return fmt.Errorf("batch insert swap txs: %w", err)
		}
	}
	if len(b.turnstile) > 0 {
		if err := repo.InsertTurnstileTxs(ctx, b.turnstile); err != nil {
			return fmt.Errorf("batch insert turnstile txs: %w", err)
		}
	}
	if len(b.shielded) > 0 {
		if err := repo.InsertShieldedTxs(ctx, b.shielded); err != nil {
			return fmt.Errorf("batch insert shielded txs: %w", err)
		}
	}
	if len(b.transparent) > 0 {
		if err := repo.InsertTransparentTxs(ctx, b.transparent); err != nil {
			return fmt.Errorf("batch insert transparent txs: %w", err)
		}
	}
	if len(b.unknown) > 0 {
		if err := repo.InsertUnknownTxs(ctx, b.unknown); err != nil {
			return fmt.Errorf("batch insert unknown txs: %w", err)
		}
	}
	if len(b.processed) > 0 {
		if err := repo.InsertProcessedBlocks(ctx, b.processed); err != nil {
			return fmt.Errorf("batch insert processed blocks: %w", err)
		}
	}

	*b = batch{}
	return nil
}
