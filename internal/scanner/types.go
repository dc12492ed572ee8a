// Package scanner walks the chain serially, classifies every transaction and
// persists the results. Progress markers are written only after the
// classification rows of the covered blocks, so an interrupted run can resume
// without losing data.
package scanner

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/piratescan/arrr-activity-backend/internal/model"
	"github.com/piratescan/arrr-activity-backend/internal/pirate"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		MaxContiguousProcessedHeight(ctx context.Context) (uint64, bool, error)
		ProcessedHeights(ctx context.Context, from, to uint64) (map[uint64]struct{}, error)
		MinerAddresses(ctx context.Context) ([]string, error)
		OpenSwapAddresses(ctx context.Context) (map[string]struct{}, error)
		InsertCoinbaseTxs(ctx context.Context, txs []model.CoinbaseTx) error
		InsertShieldingTxs(ctx context.Context, txs []model.ShieldingTx) error
		InsertDPoWTxs(ctx context.Context, txs []model.DPoWTx) error
		InsertAtomicSwapTxs(ctx context.Context, txs []model.SwapTx) error
		InsertTurnstileTxs(ctx context.Context, txs []model.TurnstileTx) error
		InsertShieldedTxs(ctx context.Context, txs []model.ShieldedTx) error
		InsertTransparentTxs(ctx context.Context, txs []model.TransparentTx) error
		InsertUnknownTxs(ctx context.Context, txs []model.UnknownTx) error
		InsertProcessedBlocks(ctx context.Context, blocks []model.ProcessedBlock) error
	}

	NodeClient interface {
		BlockCount(ctx context.Context) (uint64, error)
		BlockHash(ctx context.Context, height uint64) (*chainhash.Hash, error)
		Block(ctx context.Context, hash *chainhash.Hash) (*pirate.VerboseBlock, error)
		RawTransaction(ctx context.Context, txid string) (*pirate.RawTransaction, error)
	}

	Metrics interface {
		ObserveProcessBlock(err error, started time.Time)
		ObserveFlush(err error, txs int, started time.Time)
		ObserveClassified(txType model.TxType)
	}
)
