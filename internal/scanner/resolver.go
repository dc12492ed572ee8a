package scanner

import (
	"container/list"
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/piratescan/arrr-activity-backend/internal/pirate"
)

// prevout is the resolved value and destination of a previous output.
type prevout struct {
	Address string
	Amount  btcutil.Amount
}

// prevoutResolver caches transaction outputs during the scan so input values
// can be computed. Spends usually reference recent outputs, so a bounded LRU
// keeps the working set without holding the whole chain in memory. Misses
// fall back to getrawtransaction on the node.
type prevoutResolver struct {
	node    NodeClient
	decoder *pirate.ScriptDecoder
	limit   int
	entries map[string]*list.Element
	order   *list.List
}

type resolverEntry struct {
	txid string
	outs []prevout
}

func newPrevoutResolver(node NodeClient, decoder *pirate.ScriptDecoder, limit int) *prevoutResolver {
	if limit <= 0 {
		limit = 20000
	}
	return &prevoutResolver{
		node:    node,
		decoder: decoder,
		limit:   limit,
		entries: make(map[string]*list.Element, limit),
		order:   list.New(),
	}
}

// Seed caches the outputs of a freshly scanned transaction.
func (r *prevoutResolver) Seed(tx *pirate.RawTransaction) error {
	outs, err := r.convert(tx)
	if err != nil {
		return err
	}
	r.store(tx.TxID, outs)
	return nil
}

// Resolve returns the outputs of the given transaction, fetching it from the
// node when not cached.
func (r *prevoutResolver) Resolve(ctx context.Context, txid string) ([]prevout, error) {
	if elem, ok := r.entries[txid]; ok {
		r.order.MoveToFront(elem)
		return elem.Value.(resolverEntry).outs, nil
	}

	tx, err := r.node.RawTransaction(ctx, txid)
	if err != nil {
		return nil, fmt.Errorf("fetch prev tx %s: %w", txid, err)
	}
	outs, err := r.convert(tx)
	if err != nil {
		return nil, err
	}

	r.store(txid, outs)
	return outs, nil
}

func (r *prevoutResolver) convert(tx *pirate.RawTransaction) ([]prevout, error) {
	outs := make([]prevout, len(tx.Vout))
	for idx, vout := range tx.Vout {
		amount, err := pirate.ToArrrtoshis(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d convert value: %w", tx.TxID, idx, err)
		}
		addrs, err := r.decoder.Addresses(vout)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d decode addresses: %w", tx.TxID, idx, err)
		}
		out := prevout{Amount: amount}
		if len(addrs) > 0 {
			out.Address = addrs[0]
		}
		outs[idx] = out
	}
	return outs, nil
}

func (r *prevoutResolver) store(txid string, outs []prevout) {
	if elem, ok := r.entries[txid]; ok {
		r.order.MoveToFront(elem)
		return
	}
	r.entries[txid] = r.order.PushFront(resolverEntry{txid: txid, outs: outs})
	for len(r.entries) > r.limit {
		oldest := r.order.Back()
		if oldest == nil {
			break
		}
		r.order.Remove(oldest)
		delete(r.entries, oldest.Value.(resolverEntry).txid)
	}
}
