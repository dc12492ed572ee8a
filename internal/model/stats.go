package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// DailyStat is one (date, tx_type) bucket of the daily activity fold.
type DailyStat struct {
	Date        string
	TxType      TxType
	TxCount     uint64
	TotalFee    btcutil.Amount
	TotalAmount btcutil.Amount
}

// ProcessedBlock marks a block height whose classifications were persisted.
type ProcessedBlock struct {
	Height    uint64
	Timestamp time.Time
}

// MinerStat is the cumulative record of one coinbase recipient address.
type MinerStat struct {
	Address     string
	Name        string
	FirstSeen   time.Time
	LastSeen    time.Time
	TotalAmount btcutil.Amount
	TxCount     uint64
}

// NotaryStat is the cumulative record of one notary address.
type NotaryStat struct {
	Address   string
	Name      string
	TxCount   uint64
	TotalOut  btcutil.Amount
	TotalFee  btcutil.Amount
	LastSeen  time.Time
}

// SwapRow is the slim projection of atomic swap rows used by the aggregator.
type SwapRow struct {
	TxID     string
	Date     string
	Phase    SwapPhase
	SwapAddr string
	TotalOut btcutil.Amount
	Fee      btcutil.Amount
}
