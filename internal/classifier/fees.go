package classifier

import "github.com/btcsuite/btcd/btcutil"

// feeInfo carries the value totals computed once per transaction before the
// rule cascade runs.
type feeInfo struct {
	TotalIn  btcutil.Amount
	TotalOut btcutil.Amount
	Resolved bool
	Fee      btcutil.Amount
	// Negative is set when a fully transparent transaction resolved to a
	// negative fee, which indicates a resolution error.
	Negative bool
	Note     string
}

// computeFee estimates the fee handling Sapling and Sprout components.
//
// fee = vin_sum - vout_sum - vpub_old_sum + vpub_new_sum + valueBalance
//
// For a t->z shielding joinsplit vpub_old is the transparent value entering
// the shielded pool, so subtracting it yields the expected small fee.
func computeFee(tx *Transaction) feeInfo {
	totalIn, resolved := tx.TotalIn()
	totalOut := tx.TotalOut()
	info := feeInfo{
		TotalIn:  totalIn,
		TotalOut: totalOut,
		Resolved: resolved,
	}

	if tx.IsCoinbase {
		return info
	}

	if !tx.HasShieldedParts() {
		if !resolved {
			info.Note = "inputs unresolved"
			return info
		}
		fee := totalIn - totalOut
		if fee < 0 {
			info.Negative = true
			info.Note = "negative fee after input resolution"
			return info
		}
		info.Fee = fee
		return info
	}

	var vpubOld, vpubNew btcutil.Amount
	for _, js := range tx.JoinSplits {
		vpubOld += js.VPubOld
		vpubNew += js.VPubNew
	}
	fee := totalIn - totalOut - vpubOld + vpubNew + tx.ValueBalance
	if fee < 0 {
		info.Note = "shielded fee clamped to zero"
		fee = 0
	}
	info.Fee = fee
	return info
}
