package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piratescan/arrr-activity-backend/internal/classifier"
	"github.com/piratescan/arrr-activity-backend/internal/pirate"
)

// buildTransaction converts an RPC transaction into the classifier's resolved
// view. Inputs whose previous output cannot be fetched are marked unresolved
// rather than failing the block; the classifier downgrades those to the
// unknown bucket via the fee check.
func buildTransaction(
	ctx context.Context,
	resolver *prevoutResolver,
	decoder *pirate.ScriptDecoder,
	raw *pirate.RawTransaction,
	height uint64,
	blockTime time.Time,
) (classifier.Transaction, error) {
	tx := classifier.Transaction{
		TxID:            raw.TxID,
		BlockHeight:     height,
		Timestamp:       blockTime,
		IsCoinbase:      raw.IsCoinbase(),
		ShieldedSpends:  len(raw.VShieldedSpend),
		ShieldedOutputs: len(raw.VShieldedOutput),
	}

	var err error
	if tx.ValueBalance, err = pirate.ToArrrtoshis(raw.ValueBalance); err != nil {
		return tx, fmt.Errorf("tx %s convert value balance: %w", raw.TxID, err)
	}

	for _, js := range raw.VJoinSplit {
		vpubOld, convErr := pirate.ToArrrtoshis(js.VPubOld)
		if convErr != nil {
			return tx, fmt.Errorf("tx %s convert vpub_old: %w", raw.TxID, convErr)
		}
		vpubNew, convErr := pirate.ToArrrtoshis(js.VPubNew)
		if convErr != nil {
			return tx, fmt.Errorf("tx %s convert vpub_new: %w", raw.TxID, convErr)
		}
		tx.JoinSplits = append(tx.JoinSplits, classifier.JoinSplit{VPubOld: vpubOld, VPubNew: vpubNew})
	}

	for idx, vout := range raw.Vout {
		amount, convErr := pirate.ToArrrtoshis(vout.Value)
		if convErr != nil {
			return tx, fmt.Errorf("tx %s output %d convert value: %w", raw.TxID, idx, convErr)
		}
		addrs, decodeErr := decoder.Addresses(vout)
		if decodeErr != nil {
			return tx, fmt.Errorf("tx %s output %d decode addresses: %w", raw.TxID, idx, decodeErr)
		}
		tx.Outputs = append(tx.Outputs, classifier.Output{
			Addresses:  addrs,
			Amount:     amount,
			ScriptType: vout.ScriptPubKey.Type,
			ReqSigs:    vout.ScriptPubKey.ReqSigs,
		})
	}

	for _, vin := range raw.Vin {
		if vin.IsCoinbase() {
			continue
		}

		input := classifier.Input{
			PrevTxID: vin.TxID,
			PrevVout: vin.Vout,
			Address:  vin.Address,
		}

		outs, resolveErr := resolver.Resolve(ctx, vin.TxID)
		switch {
		case resolveErr == nil && int(vin.Vout) < len(outs):
			prev := outs[vin.Vout]
			input.Amount = prev.Amount
			input.Resolved = true
			if input.Address == "" {
				input.Address = prev.Address
			}
		case errors.Is(resolveErr, context.Canceled), errors.Is(resolveErr, context.DeadlineExceeded):
			return tx, resolveErr
		}

		tx.Inputs = append(tx.Inputs, input)
	}

	return tx, nil
}
