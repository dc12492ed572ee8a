package pirate

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// ToArrrtoshis converts an ARRR amount from RPC float form into the integer
// base unit, guarding against out-of-range values.
func ToArrrtoshis(value float64) (btcutil.Amount, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	return amt, nil
}

// SumOutputs sums a transaction's transparent output values.
func SumOutputs(tx *RawTransaction) (btcutil.Amount, error) {
	var total btcutil.Amount
	for idx, vout := range tx.Vout {
		if vout.Value < 0 {
			return 0, fmt.Errorf("tx %s output %d negative value: %f", tx.TxID, idx, vout.Value)
		}
		value, err := ToArrrtoshis(vout.Value)
		if err != nil {
			return 0, fmt.Errorf("tx %s output %d convert value: %w", tx.TxID, idx, err)
		}
		total += value
	}
	return total, nil
}

// ShieldedValue returns the absolute value moved across the shielded pool
// boundary, per the transaction's valueBalance.
func ShieldedValue(tx *RawTransaction) btcutil.Amount {
	vb := tx.ValueBalance
	if vb < 0 {
		vb = -vb
	}
	amt, err := btcutil.NewAmount(vb)
	if err != nil {
		return 0
	}
	return amt
}
