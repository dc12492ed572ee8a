package classifier

import (
	"sort"
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// Input is a transparent transaction input with its previous output resolved.
type Input struct {
	PrevTxID string
	PrevVout uint32
	Address  string
	Amount   btcutil.Amount
	Resolved bool
}

// Output is a transparent transaction output.
type Output struct {
	Addresses  []string
	Amount     btcutil.Amount
	ScriptType string
	ReqSigs    int32
}

// JoinSplit carries the transparent value legs of a Sprout joinsplit.
type JoinSplit struct {
	VPubOld btcutil.Amount
	VPubNew btcutil.Amount
}

// Transaction is the classifier's resolved view of one transaction. Inputs
// holds transparent inputs only; the coinbase mint input is excluded.
type Transaction struct {
	TxID            string
	BlockHeight     uint64
	Timestamp       time.Time
	IsCoinbase      bool
	Inputs          []Input
	Outputs         []Output
	ShieldedSpends  int
	ShieldedOutputs int
	JoinSplits      []JoinSplit
	ValueBalance    btcutil.Amount
}

// HasShieldedParts reports whether any shielded component is present.
func (t *Transaction) HasShieldedParts() bool {
	return t.ShieldedSpends > 0 || t.ShieldedOutputs > 0 || len(t.JoinSplits) > 0 || t.ValueBalance != 0
}

// ShieldedValue is the absolute value crossing the shielded pool boundary.
// Sapling reports it as valueBalance; for Sprout-only transactions the
// joinsplit legs carry it instead.
func (t *Transaction) ShieldedValue() btcutil.Amount {
	value := t.ValueBalance
	if value < 0 {
		value = -value
	}
	if value != 0 || len(t.JoinSplits) == 0 {
		return value
	}

	var vpubOld, vpubNew btcutil.Amount
	for _, js := range t.JoinSplits {
		vpubOld += js.VPubOld
		vpubNew += js.VPubNew
	}
	net := vpubOld - vpubNew
	if net < 0 {
		net = -net
	}
	return net
}

// TotalOut sums the transparent output values.
func (t *Transaction) TotalOut() btcutil.Amount {
	var total btcutil.Amount
	for _, out := range t.Outputs {
		total += out.Amount
	}
	return total
}

// TotalIn sums the resolved transparent input values and reports whether
// every input was resolved.
func (t *Transaction) TotalIn() (btcutil.Amount, bool) {
	var total btcutil.Amount
	resolved := true
	for _, in := range t.Inputs {
		if !in.Resolved {
			resolved = false
			continue
		}
		total += in.Amount
	}
	return total, resolved
}

// InAddresses returns the sorted distinct source addresses.
func (t *Transaction) InAddresses() []string {
	addrs := make([]string, 0, len(t.Inputs))
	for _, in := range t.Inputs {
		if in.Address != "" {
			addrs = append(addrs, in.Address)
		}
	}
	return sortedUnique(addrs)
}

// OutAddresses returns the sorted distinct destination addresses.
func (t *Transaction) OutAddresses() []string {
	var addrs []string
	for _, out := range t.Outputs {
		addrs = append(addrs, out.Addresses...)
	}
	return sortedUnique(addrs)
}

func sortedUnique(addrs []string) []string {
	if len(addrs) == 0 {
		return nil
	}
	sort.Strings(addrs)
	result := addrs[:1]
	for _, addr := range addrs[1:] {
		if addr != result[len(result)-1] {
			result = append(result, addr)
		}
	}
	return result
}
