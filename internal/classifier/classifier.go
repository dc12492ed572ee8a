// Package classifier assigns Pirate Chain transactions to semantic buckets.
//
// Classification is a priority-ordered first-match-wins cascade: the rule
// order below is a contract, not an implementation detail. Every transaction
// maps to exactly one bucket; anything unrecognizable resolves to the unknown
// bucket, never an error.
package classifier

import (
	"strings"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/model"
)

// Late-2018 shielded pool migration event. Non-miner t->z shielding inside
// this window counts as turnstile traffic.
var (
	turnstileWindowStart = time.Date(2018, time.December, 15, 0, 0, 0, 0, time.UTC)
	turnstileWindowEnd   = time.Date(2019, time.January, 31, 0, 0, 0, 0, time.UTC)
)

type rule struct {
	name     string
	classify func(tx *Transaction, ctx *Context, fees feeInfo) *model.Classification
}

// rules is the ordered cascade. Reordering entries changes classification
// priority.
var rules = []rule{
	{name: "coinbase", classify: classifyCoinbase},
	{name: "negative_fee", classify: classifyNegativeFee},
	{name: "dpow", classify: classifyDPoW},
	{name: "atomic_swap", classify: classifyAtomicSwap},
	{name: "turnstile", classify: classifyTurnstile},
	{name: "shielded", classify: classifyShielded},
	{name: "shielding", classify: classifyShielding},
	{name: "unknown_transparent", classify: classifyTransparent},
}

// Classify assigns the transaction to exactly one bucket. It is pure and
// deterministic given identical tx and ctx.
func Classify(tx Transaction, ctx Context) model.Classification {
	fees := computeFee(&tx)
	for _, r := range rules {
		if c := r.classify(&tx, &ctx, fees); c != nil {
			return *c
		}
	}
	return unknown(&tx, "partially shielded transaction")
}

func classifyCoinbase(tx *Transaction, ctx *Context, _ feeInfo) *model.Classification {
	if !tx.IsCoinbase {
		return nil
	}
	if len(tx.Outputs) == 0 && tx.HasShieldedParts() {
		return &model.Classification{
			Type: model.TxTypeCoinbaseShielding,
			Shielding: &model.ShieldingTx{
				TxID:        tx.TxID,
				BlockHeight: tx.BlockHeight,
				Timestamp:   tx.Timestamp,
				Source:      model.ShieldingSourceCoinbase,
				Value:       tx.ShieldedValue(),
			},
		}
	}

	var dominant *Output
	for i := range tx.Outputs {
		if dominant == nil || tx.Outputs[i].Amount > dominant.Amount {
			dominant = &tx.Outputs[i]
		}
	}
	address := ""
	if dominant != nil && len(dominant.Addresses) > 0 {
		address = dominant.Addresses[0]
	}
	poolName := "Unknown pool"
	if name, ok := ctx.Pools.PoolName(address); ok {
		poolName = name
	}
	return &model.Classification{
		Type: model.TxTypeCoinbase,
		Coinbase: &model.CoinbaseTx{
			TxID:        tx.TxID,
			BlockHeight: tx.BlockHeight,
			Timestamp:   tx.Timestamp,
			Address:     address,
			Amount:      tx.TotalOut(),
			PoolName:    poolName,
		},
	}
}

// classifyNegativeFee routes resolution errors away from the aggregates:
// a fully transparent transaction whose inputs sum below its outputs cannot
// be trusted, so it lands in the unknown bucket instead of recording a
// negative fee.
func classifyNegativeFee(tx *Transaction, _ *Context, fees feeInfo) *model.Classification {
	if !fees.Negative {
		return nil
	}
	c := unknown(tx, fees.Note)
	return &c
}

func classifyDPoW(tx *Transaction, ctx *Context, fees feeInfo) *model.Classification {
	for _, addr := range append(tx.InAddresses(), tx.OutAddresses()...) {
		notary, ok := ctx.Notaries.NotaryAt(addr, tx.BlockHeight)
		if !ok {
			continue
		}
		return &model.Classification{
			Type: model.TxTypeDPoW,
			DPoW: &model.DPoWTx{
				TxID:         tx.TxID,
				BlockHeight:  tx.BlockHeight,
				Timestamp:    tx.Timestamp,
				NotaryName:   notary.Name,
				NotarySeason: notary.Season,
				Address:      notary.Address,
				TotalIn:      fees.TotalIn,
				TotalOut:     fees.TotalOut,
				Fee:          fees.Fee,
			},
		}
	}
	return nil
}

func classifyAtomicSwap(tx *Transaction, ctx *Context, fees feeInfo) *model.Classification {
	if swapAddr := swapShapedOutput(tx, ctx.SwapAddrPrefix); swapAddr != "" {
		return &model.Classification{
			Type: model.TxTypeAtomicSwap,
			Swap: &model.SwapTx{
				TxID:         tx.TxID,
				BlockHeight:  tx.BlockHeight,
				Timestamp:    tx.Timestamp,
				Phase:        model.SwapPhaseStart,
				SwapAddr:     swapAddr,
				InAddresses:  tx.InAddresses(),
				OutAddresses: tx.OutAddresses(),
				TotalIn:      fees.TotalIn,
				TotalOut:     fees.TotalOut,
				Fee:          fees.Fee,
			},
		}
	}

	swapAddr := swapShapedInput(tx, ctx.SwapAddrPrefix)
	if swapAddr == "" {
		return nil
	}
	if !ctx.Swaps.HasOpenStart(swapAddr) {
		// A spend out of a swap-shaped address without a recorded start.
		// Never fabricate the missing start.
		return transparent(tx, fees)
	}
	return &model.Classification{
		Type: model.TxTypeAtomicSwapComplete,
		Swap: &model.SwapTx{
			TxID:         tx.TxID,
			BlockHeight:  tx.BlockHeight,
			Timestamp:    tx.Timestamp,
			Phase:        model.SwapPhaseComplete,
			SwapAddr:     swapAddr,
			CompleteTxID: tx.TxID,
			InAddresses:  tx.InAddresses(),
			OutAddresses: tx.OutAddresses(),
			TotalIn:      fees.TotalIn,
			TotalOut:     fees.TotalOut,
			Fee:          fees.Fee,
		},
	}
}

func classifyTurnstile(tx *Transaction, ctx *Context, fees feeInfo) *model.Classification {
	matched := false
	if ctx.TurnstileAddress != "" {
		for _, addr := range tx.OutAddresses() {
			if addr == ctx.TurnstileAddress {
				matched = true
				break
			}
		}
	}
	// z->t migration: shielded funds paying transparent outputs with no
	// transparent inputs at all.
	if !matched {
		matched = tx.HasShieldedParts() && len(tx.Outputs) > 0 && len(tx.Inputs) == 0
	}
	if !matched {
		return nil
	}
	return &model.Classification{
		Type: model.TxTypeTurnstile,
		Turnstile: &model.TurnstileTx{
			TxID:         tx.TxID,
			BlockHeight:  tx.BlockHeight,
			Timestamp:    tx.Timestamp,
			InAddresses:  tx.InAddresses(),
			OutAddresses: tx.OutAddresses(),
			TotalIn:      fees.TotalIn,
			TotalOut:     fees.TotalOut,
			Fee:          fees.Fee,
		},
	}
}

func classifyShielded(tx *Transaction, _ *Context, fees feeInfo) *model.Classification {
	if len(tx.Inputs) > 0 || len(tx.Outputs) > 0 || !tx.HasShieldedParts() {
		return nil
	}
	return &model.Classification{
		Type: model.TxTypeShielded,
		Shielded: &model.ShieldedTx{
			TxID:        tx.TxID,
			BlockHeight: tx.BlockHeight,
			Timestamp:   tx.Timestamp,
			Fee:         fees.Fee,
		},
	}
}

func classifyShielding(tx *Transaction, ctx *Context, fees feeInfo) *model.Classification {
	if len(tx.Inputs) == 0 || len(tx.Outputs) > 0 || !tx.HasShieldedParts() {
		return nil
	}

	source := model.ShieldingSourceWallet
	for _, addr := range tx.InAddresses() {
		if ctx.Miners.IsMiner(addr) {
			source = model.ShieldingSourceMiner
			break
		}
	}
	if source == model.ShieldingSourceWallet && inTurnstileWindow(tx.Timestamp) {
		return &model.Classification{
			Type: model.TxTypeTurnstile,
			Turnstile: &model.TurnstileTx{
				TxID:        tx.TxID,
				BlockHeight: tx.BlockHeight,
				Timestamp:   tx.Timestamp,
				InAddresses: tx.InAddresses(),
				TotalIn:     fees.TotalIn,
				TotalOut:    fees.TotalOut,
				Fee:         fees.Fee,
			},
		}
	}
	return &model.Classification{
		Type: model.TxTypeCoinbaseShielding,
		Shielding: &model.ShieldingTx{
			TxID:        tx.TxID,
			BlockHeight: tx.BlockHeight,
			Timestamp:   tx.Timestamp,
			Source:      source,
			InAddresses: tx.InAddresses(),
			TotalIn:     fees.TotalIn,
			Value:       tx.ShieldedValue(),
			Fee:         fees.Fee,
		},
	}
}

func classifyTransparent(tx *Transaction, _ *Context, fees feeInfo) *model.Classification {
	if len(tx.Outputs) == 0 || tx.HasShieldedParts() {
		return nil
	}
	return transparent(tx, fees)
}

func transparent(tx *Transaction, fees feeInfo) *model.Classification {
	return &model.Classification{
		Type: model.TxTypeUnknownTransparent,
		Transparent: &model.TransparentTx{
			TxID:         tx.TxID,
			BlockHeight:  tx.BlockHeight,
			Timestamp:    tx.Timestamp,
			InAddresses:  tx.InAddresses(),
			OutAddresses: tx.OutAddresses(),
			TotalIn:      fees.TotalIn,
			TotalOut:     fees.TotalOut,
			Fee:          fees.Fee,
		},
	}
}

func unknown(tx *Transaction, note string) model.Classification {
	return model.Classification{
		Type: model.TxTypeUnknown,
		Unknown: &model.UnknownTx{
			TxID:        tx.TxID,
			BlockHeight: tx.BlockHeight,
			Timestamp:   tx.Timestamp,
			Note:        note,
		},
	}
}

// Unclassifiable builds the unknown-bucket record for a transaction that
// could not even be decoded into a classifier view.
func Unclassifiable(txid string, height uint64, ts time.Time, note string) model.Classification {
	tx := Transaction{TxID: txid, BlockHeight: height, Timestamp: ts}
	return unknown(&tx, note)
}

func swapShapedOutput(tx *Transaction, prefix string) string {
	for _, out := range tx.Outputs {
		shaped := out.ScriptType == "multisig" || out.ScriptType == "scripthash" || out.ReqSigs > 1
		addr := firstWithPrefix(out.Addresses, prefix)
		if addr != "" {
			return addr
		}
		if shaped && len(out.Addresses) > 0 {
			return out.Addresses[0]
		}
	}
	return ""
}

func swapShapedInput(tx *Transaction, prefix string) string {
	addrs := make([]string, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		addrs = append(addrs, in.Address)
	}
	return firstWithPrefix(addrs, prefix)
}

func firstWithPrefix(addrs []string, prefix string) string {
	if prefix == "" {
		return ""
	}
	for _, addr := range addrs {
		if strings.HasPrefix(addr, prefix) {
			return addr
		}
	}
	return ""
}

func inTurnstileWindow(ts time.Time) bool {
	ts = ts.UTC()
	return !ts.Before(turnstileWindowStart) && !ts.After(turnstileWindowEnd)
}
