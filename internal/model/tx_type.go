// Package model defines domain models for Pirate Chain activity classification.
package model

import "time"

// TxType identifies the semantic bucket a transaction was classified into.
type TxType string

const (
	// TxTypeCoinbase is the block's minted transaction paying transparent outputs.
	TxTypeCoinbase TxType = "coinbase"
	// TxTypeCoinbaseShielding is a transparent-to-shielded sweep (t->z).
	TxTypeCoinbaseShielding TxType = "coinbase_shielding"
	// TxTypeDPoW is a delayed-proof-of-work notarization transaction.
	TxTypeDPoW TxType = "dpow"
	// TxTypeAtomicSwap is the funding phase of an atomic swap contract.
	TxTypeAtomicSwap TxType = "atomic_swap"
	// TxTypeAtomicSwapComplete is the redeeming spend of a prior swap start.
	TxTypeAtomicSwapComplete TxType = "atomic_swap_complete"
	// TxTypeTurnstile is a shielded-to-transparent migration.
	TxTypeTurnstile TxType = "turnstile"
	// TxTypeShielded is a fully shielded transaction (z->z).
	TxTypeShielded TxType = "shielded"
	// TxTypeUnknownTransparent is a transparent transaction matching no known pattern.
	TxTypeUnknownTransparent TxType = "unknown_transparent"
	// TxTypeUnknown marks transactions that could not be classified.
	TxTypeUnknown TxType = "unknown"
)

// SwapPhase distinguishes the two rows a completed atomic swap produces.
type SwapPhase string

const (
	SwapPhaseStart    SwapPhase = "start"
	SwapPhaseComplete SwapPhase = "complete"
)

// ShieldingSource tags who moved transparent funds into the shielded pool.
type ShieldingSource string

const (
	// ShieldingSourceCoinbase marks a true coinbase whose outputs are all shielded.
	ShieldingSourceCoinbase ShieldingSource = "coinbase"
	// ShieldingSourceMiner marks a t->z sweep spending known miner addresses.
	ShieldingSourceMiner ShieldingSource = "miner"
	// ShieldingSourceWallet marks any other t->z shielding.
	ShieldingSourceWallet ShieldingSource = "wallet"
)

// UTCDate formats a block timestamp as the UTC calendar day used for bucketing.
func UTCDate(ts time.Time) string {
	return ts.UTC().Format("2006-01-02")
}
