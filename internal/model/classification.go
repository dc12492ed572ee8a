package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// CoinbaseTx describes the block's minted transaction.
type CoinbaseTx struct {
	TxID        string
	BlockHeight uint64
	Timestamp   time.Time
	Address     string
	Amount      btcutil.Amount
	PoolName    string
}

// ShieldingTx describes a transparent-to-shielded sweep. Value is the amount
// that entered the shielded pool; TotalIn is zero when inputs could not be
// resolved.
type ShieldingTx struct {
	TxID        string
	BlockHeight uint64
	Timestamp   time.Time
	Source      ShieldingSource
	InAddresses []string
	TotalIn     btcutil.Amount
	Value       btcutil.Amount
	Fee         btcutil.Amount
}

// DPoWTx describes a notarization transaction. NotarySeason is empty when the
// notary address is known but the block height falls outside every season.
type DPoWTx struct {
	TxID         string
	BlockHeight  uint64
	Timestamp    time.Time
	NotaryName   string
	NotarySeason string
	Address      string
	TotalIn      btcutil.Amount
	TotalOut     btcutil.Amount
	Fee          btcutil.Amount
}

// SwapTx describes one phase of an atomic swap. Start and complete rows are
// joined by SwapAddr; CompleteTxID is set only on complete rows.
type SwapTx struct {
	TxID          string
	BlockHeight   uint64
	Timestamp     time.Time
	Phase         SwapPhase
	SwapAddr      string
	CompleteTxID  string
	InAddresses   []string
	OutAddresses  []string
	TotalIn       btcutil.Amount
	TotalOut      btcutil.Amount
	Fee           btcutil.Amount
}

// TurnstileTx describes a shielded-to-transparent migration.
type TurnstileTx struct {
	TxID         string
	BlockHeight  uint64
	Timestamp    time.Time
	InAddresses  []string
	OutAddresses []string
	TotalIn      btcutil.Amount
	TotalOut     btcutil.Amount
	Fee          btcutil.Amount
}

// ShieldedTx describes a fully shielded transaction.
type ShieldedTx struct {
	TxID        string
	BlockHeight uint64
	Timestamp   time.Time
	Fee         btcutil.Amount
}

// TransparentTx describes a fully transparent transaction that matched no
// known pattern.
type TransparentTx struct {
	TxID         string
	BlockHeight  uint64
	Timestamp    time.Time
	InAddresses  []string
	OutAddresses []string
	TotalIn      btcutil.Amount
	TotalOut     btcutil.Amount
	Fee          btcutil.Amount
}

// UnknownTx records a transaction that could not be classified.
type UnknownTx struct {
	TxID        string
	BlockHeight uint64
	Timestamp   time.Time
	Note        string
}

// Classification is the tagged result of classifying one transaction.
// Exactly one variant pointer is set, matching Type.
type Classification struct {
	Type        TxType
	Coinbase    *CoinbaseTx
	Shielding   *ShieldingTx
	DPoW        *DPoWTx
	Swap        *SwapTx
	Turnstile   *TurnstileTx
	Shielded    *ShieldedTx
	Transparent *TransparentTx
	Unknown     *UnknownTx
}
