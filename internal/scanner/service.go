package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/piratescan/arrr-activity-backend/internal/classifier"
	"github.com/piratescan/arrr-activity-backend/internal/clock"
	"github.com/piratescan/arrr-activity-backend/internal/model"
	"github.com/piratescan/arrr-activity-backend/internal/pirate"
	"github.com/piratescan/arrr-activity-backend/internal/registry"
)

// Config tunes the scan loop.
type Config struct {
	// FlushBlocks is how many blocks accumulate before a batch flush.
	FlushBlocks int
	// Retries is the number of attempts per block before the scan aborts.
	Retries int
	// RetryDelay is the pause between attempts on the same block.
	RetryDelay time.Duration
	// RPS caps node RPC calls per second; zero means unlimited.
	RPS int
	// PrevoutCacheSize bounds the resolver's output cache.
	PrevoutCacheSize int
}

// DefaultConfig returns sane scan defaults.
func DefaultConfig() Config {
	return Config{
		FlushBlocks:      100,
		Retries:          5,
		RetryDelay:       5 * time.Second,
		RPS:              0,
		PrevoutCacheSize: 20000,
	}
}

// Service walks a height range block by block and persists classifications.
type Service struct {
	repo     Repository
	node     NodeClient
	registry *registry.Registry
	logger   *zap.Logger
	metrics  Metrics
	cfg      Config
}

// NewService builds the scan service with the provided dependencies.
func NewService(
	repo Repository,
	node NodeClient,
	reg *registry.Registry,
	logger *zap.Logger,
	metrics Metrics,
	cfg Config,
) *Service {
	if cfg.FlushBlocks <= 0 || cfg.Retries <= 0 || cfg.RetryDelay <= 0 {
		cfg = DefaultConfig()
	}
	return &Service{
		repo:     repo,
		node:     node,
		registry: reg,
		logger:   logger,
		metrics:  metrics,
		cfg:      cfg,
	}
}

// ResumeHeight returns the height scanning should continue from: one past the
// highest contiguously processed height, or false when nothing was processed.
func (s *Service) ResumeHeight(ctx context.Context) (uint64, bool, error) {
	height, found, err := s.repo.MaxContiguousProcessedHeight(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("resume height: %w", err)
	}
	if !found {
		return 0, false, nil
	}
	return height + 1, true, nil
}

// TipHeight returns the node's current chain height.
func (s *Service) TipHeight(ctx context.Context) (uint64, error) {
	return s.node.BlockCount(ctx)
}

// Run scans [startHeight, endHeight] inclusive. Already-processed heights
// inside the range are skipped, so rerunning a range is idempotent.
func (s *Service) Run(ctx context.Context, startHeight, endHeight uint64) error {
	if startHeight > endHeight {
		return fmt.Errorf("start height %d above end height %d", startHeight, endHeight)
	}

	node := s.node
	if s.cfg.RPS > 0 {
		node = newThrottledNode(s.node, ratelimit.New(s.cfg.RPS))
	}

	miners, swaps, err := s.seedTrackers(ctx)
	if err != nil {
		return err
	}

	processed, err := s.repo.ProcessedHeights(ctx, startHeight, endHeight)
	if err != nil {
		return fmt.Errorf("load processed heights: %w", err)
	}

	s.logger.Info("starting scan",
		zap.Uint64("start_height", startHeight),
		zap.Uint64("end_height", endHeight),
		zap.Int("already_processed", len(processed)))

	decoder := pirate.NewScriptDecoder()
	resolver := newPrevoutResolver(node, decoder, s.cfg.PrevoutCacheSize)

	clsCtx := classifier.Context{
		Notaries:         s.registry,
		Pools:            s.registry,
		Miners:           miners,
		Swaps:            swaps,
		TurnstileAddress: s.registry.TurnstileAddress(),
		SwapAddrPrefix:   s.registry.SwapAddrPrefix(),
	}

	var b batch
	for height := startHeight; height <= endHeight; height++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, done := processed[height]; done {
			continue
		}

		if err := s.processHeight(ctx, node, resolver, decoder, clsCtx, miners, swaps, &b, height); err != nil {
			return err
		}

		if b.blockCount() >= s.cfg.FlushBlocks {
			if err := s.flush(ctx, &b); err != nil {
				return err
			}
		}

		if (height-startHeight+1)%100 == 0 {
			s.logger.Info("scan progress",
				zap.Uint64("height", height),
				zap.Uint64("remaining", endHeight-height))
		}
	}

	if b.blockCount() > 0 || b.txCount() > 0 {
		if err := s.flush(ctx, &b); err != nil {
			return err
		}
	}

	s.logger.Info("scan complete",
		zap.Uint64("start_height", startHeight),
		zap.Uint64("end_height", endHeight))

	return nil
}

func (s *Service) seedTrackers(ctx context.Context) (*minerSet, *swapIndex, error) {
	knownMiners, err := s.repo.MinerAddresses(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load miner addresses: %w", err)
	}
	miners := newMinerSet(append(s.registry.PoolAddresses(), knownMiners...))

	openSwaps, err := s.repo.OpenSwapAddresses(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load open swap addresses: %w", err)
	}

	return miners, newSwapIndex(openSwaps), nil
}

func (s *Service) processHeight(
	ctx context.Context,
	node NodeClient,
	resolver *prevoutResolver,
	decoder *pirate.ScriptDecoder,
	clsCtx classifier.Context,
	miners *minerSet,
	swaps *swapIndex,
	b *batch,
	height uint64,
) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.ObserveProcessBlock(err, started)
	}()

	block, err := s.fetchBlock(ctx, node, height)
	if err != nil {
		return err
	}
	blockTime := time.Unix(block.Time, 0).UTC()

	// Outputs of this block's own transactions are spendable within it.
	for i := range block.Tx {
		if seedErr := resolver.Seed(&block.Tx[i]); seedErr != nil {
			err = seedErr
			return err
		}
	}

	for i := range block.Tx {
		raw := &block.Tx[i]
		tx, buildErr := buildTransaction(ctx, resolver, decoder, raw, height, blockTime)

		var c model.Classification
		switch {
		case errors.Is(buildErr, context.Canceled), errors.Is(buildErr, context.DeadlineExceeded):
			err = buildErr
			return err
		case buildErr != nil:
			s.logger.Warn("undecodable transaction",
				zap.Uint64("height", height),
				zap.String("txid", raw.TxID),
				zap.Error(buildErr))
			c = classifier.Unclassifiable(raw.TxID, height, blockTime, buildErr.Error())
		default:
			c = classifier.Classify(tx, clsCtx)
		}
		s.applyClassification(c, miners, swaps)
		s.metrics.ObserveClassified(c.Type)
		if err = b.add(c); err != nil {
			return err
		}
	}

	b.markProcessed(model.ProcessedBlock{Height: height, Timestamp: blockTime})
	return nil
}

func (s *Service) applyClassification(c model.Classification, miners *minerSet, swaps *swapIndex) {
	switch c.Type {
	case model.TxTypeCoinbase:
		miners.add(c.Coinbase.Address)
	case model.TxTypeAtomicSwap:
		swaps.opened(c.Swap.SwapAddr)
	case model.TxTypeAtomicSwapComplete:
		swaps.closed(c.Swap.SwapAddr)
	}
}

func (s *Service) fetchBlock(ctx context.Context, node NodeClient, height uint64) (*pirate.VerboseBlock, error) {
	var lastErr error
	for attempt := 1; attempt <= s.cfg.Retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		hash, err := node.BlockHash(ctx, height)
		if err == nil {
			var block *pirate.VerboseBlock
			if block, err = node.Block(ctx, hash); err == nil {
				return block, nil
			}
		}
		lastErr = err

		s.logger.Warn("block fetch failed",
			zap.Uint64("height", height),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt < s.cfg.Retries {
			if sleepErr := clock.SleepWithContext(ctx, s.cfg.RetryDelay); sleepErr != nil {
				return nil, sleepErr
			}
		}
	}
	return nil, fmt.Errorf("fetch block %d after %d attempts: %w", height, s.cfg.Retries, lastErr)
}

func (s *Service) flush(ctx context.Context, b *batch) error {
	started := time.Now()
	txs := b.txCount()
	err := b.flush(ctx, s.repo)
	s.metrics.ObserveFlush(err, txs, started)
	if err != nil {
		return err
	}

	s.logger.Info("flushed batch",
		zap.Int("transactions", txs))
	return nil
}

// throttledNode wraps a NodeClient behind a leaky-bucket limiter so full
// history scans do not starve the node.
type throttledNode struct {
	NodeClient
	limiter ratelimit.Limiter
}

func newThrottledNode(node NodeClient, limiter ratelimit.Limiter) *throttledNode {
	return &throttledNode{NodeClient: node, limiter: limiter}
}

func (n *throttledNode) BlockCount(ctx context.Context) (uint64, error) {
	n.limiter.Take()
	return n.NodeClient.BlockCount(ctx)
}

func (n *throttledNode) BlockHash(ctx context.Context, height uint64) (*chainhash.Hash, error) {
	n.limiter.Take()
	return n.NodeClient.BlockHash(ctx, height)
}

func (n *throttledNode) Block(ctx context.Context, hash *chainhash.Hash) (*pirate.VerboseBlock, error) {
	n.limiter.Take()
	return n.NodeClient.Block(ctx, hash)
}

func (n *throttledNode) RawTransaction(ctx context.Context, txid string) (*pirate.RawTransaction, error) {
	n.limiter.Take()
	return n.NodeClient.RawTransaction(ctx, txid)
}
