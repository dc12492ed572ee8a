package scanner

// minerSet tracks addresses that received coinbase rewards. Pool payout
// addresses from the registry are members from the start; the rest accumulate
// as coinbases are classified.
type minerSet struct {
	addrs map[string]struct{}
}

func newMinerSet(seed []string) *minerSet {
	s := &minerSet{addrs: make(map[string]struct{}, len(seed))}
	for _, addr := range seed {
		s.add(addr)
	}
	return s
}

func (s *minerSet) add(addr string) {
	if addr == "" {
		return
	}
	s.addrs[addr] = struct{}{}
}

func (s *minerSet) IsMiner(addr string) bool {
	_, ok := s.addrs[addr]
	return ok
}

// swapIndex tracks swap addresses with a persisted start and no complete yet.
type swapIndex struct {
	open map[string]struct{}
}

func newSwapIndex(seed map[string]struct{}) *swapIndex {
	if seed == nil {
		seed = make(map[string]struct{})
	}
	return &swapIndex{open: seed}
}

func (s *swapIndex) opened(addr string) {
	s.open[addr] = struct{}{}
}

func (s *swapIndex) closed(addr string) {
	delete(s.open, addr)
}

func (s *swapIndex) HasOpenStart(addr string) bool {
	_, ok := s.open[addr]
	return ok
}
