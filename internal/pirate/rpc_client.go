// Package pirate implements Pirate Chain (Komodo-family) node access and
// script decoding.
package pirate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client wraps the btcd rpcclient with metrics instrumentation. Verbose calls
// go through RawRequest so Sapling/Sprout fields survive decoding.
type Client struct {
	rpc        *rpcclient.Client
	rpcMetrics RPCMetrics
}

// NewClient constructs an instrumented node client.
func NewClient(rpc *rpcclient.Client, rpcMetrics RPCMetrics) *Client {
	return &Client{
		rpc:        rpc,
		rpcMetrics: rpcMetrics,
	}
}

// Shutdown terminates the underlying RPC connection.
func (c *Client) Shutdown() {
	c.rpc.Shutdown()
	c.rpc.WaitForShutdown()
}

// BlockCount returns the node's current chain height.
func (c *Client) BlockCount(ctx context.Context) (count uint64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_count", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return 0, err
	}
	raw, err := c.rpc.RawRequest("getblockcount", nil)
	if err != nil {
		return 0, err
	}
	if err = json.Unmarshal(raw, &count); err != nil {
		return 0, fmt.Errorf("decode block count: %w", err)
	}
	return count, nil
}

// BlockHash returns the block hash at the given height.
func (c *Client) BlockHash(ctx context.Context, height uint64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	params, err := marshalParams(height)
	if err != nil {
		return nil, err
	}
	raw, err := c.rpc.RawRequest("getblockhash", params)
	if err != nil {
		return nil, err
	}
	var hashStr string
	if err = json.Unmarshal(raw, &hashStr); err != nil {
		return nil, fmt.Errorf("decode block hash: %w", err)
	}
	return chainhash.NewHashFromStr(hashStr)
}

// Block returns the block with decoded transactions (verbosity 2).
func (c *Client) Block(ctx context.Context, hash *chainhash.Hash) (block *VerboseBlock, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	params, err := marshalParams(hash.String(), 2)
	if err != nil {
		return nil, err
	}
	raw, err := c.rpc.RawRequest("getblock", params)
	if err != nil {
		return nil, err
	}
	block = &VerboseBlock{}
	if err = json.Unmarshal(raw, block); err != nil {
		return nil, fmt.Errorf("decode block %s: %w", hash, err)
	}
	return block, nil
}

// RawTransaction returns a decoded transaction (verbose=1).
func (c *Client) RawTransaction(ctx context.Context, txid string) (tx *RawTransaction, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_raw_transaction", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	params, err := marshalParams(txid, 1)
	if err != nil {
		return nil, err
	}
	raw, err := c.rpc.RawRequest("getrawtransaction", params)
	if err != nil {
		return nil, err
	}
	tx = &RawTransaction{}
	if err = json.Unmarshal(raw, tx); err != nil {
		return nil, fmt.Errorf("decode transaction %s: %w", txid, err)
	}
	return tx, nil
}

func marshalParams(params ...any) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("marshal rpc param: %w", err)
		}
		out = append(out, raw)
	}
	return out, nil
}
