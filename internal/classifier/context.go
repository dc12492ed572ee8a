package classifier

import "github.com/piratescan/arrr-activity-backend/internal/registry"

type (
	// NotaryLookup resolves notary addresses against the season tables.
	NotaryLookup interface {
		NotaryAt(addr string, height uint64) (registry.Notary, bool)
	}

	// PoolLookup resolves known mining pool payout addresses.
	PoolLookup interface {
		PoolName(addr string) (string, bool)
	}

	// MinerSet answers whether an address has been seen receiving coinbase
	// rewards. It grows as the scan progresses but is read-only here.
	MinerSet interface {
		IsMiner(addr string) bool
	}

	// SwapIndex answers whether a swap address has a recorded start that no
	// complete has claimed yet. Backed by already-persisted rows.
	SwapIndex interface {
		HasOpenStart(addr string) bool
	}
)

// Context is the injected, read-only chain context classification runs
// against. Classification is deterministic given identical tx and context.
type Context struct {
	Notaries         NotaryLookup
	Pools            PoolLookup
	Miners           MinerSet
	Swaps            SwapIndex
	TurnstileAddress string
	SwapAddrPrefix   string
}
