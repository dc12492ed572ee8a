// Package registry holds the static address context used to classify
// transactions: mining pools, notary seasons, and swap/turnstile parameters.
// It is loaded once and read-only afterwards.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/piratescan/arrr-activity-backend/internal/pirate"
)

// Notary identifies a notarization address within a season.
type Notary struct {
	Name    string
	Season  string
	Address string
}

// Season is a notary-committee epoch covering [StartHeight, EndHeight).
// EndHeight zero means open-ended.
type Season struct {
	Name        string
	StartHeight uint64
	EndHeight   uint64
}

// Registry is the immutable lookup context for classification.
type Registry struct {
	pools            map[string]string
	seasons          []Season
	notariesByAddr   map[string][]Notary
	turnstileAddress string
	swapAddrPrefix   string
}

type fileNotary struct {
	TAddr  string `json:"taddr"`
	PubKey string `json:"pubkey"`
}

type fileSeason struct {
	StartHeight uint64                `json:"start_height"`
	EndHeight   uint64                `json:"end_height"`
	Notaries    map[string]fileNotary `json:"notaries"`
}

type registryFile struct {
	TurnstileAddress string                `json:"turnstile_address"`
	SwapAddrPrefix   string                `json:"swap_address_prefix"`
	Pools            map[string]string     `json:"pools"`
	Seasons          map[string]fileSeason `json:"seasons"`
}

// Load reads the registry file and builds the lookup structure. Notary
// entries may carry a transparent address, a compressed pubkey, or both;
// pubkey-only entries have their R-address derived.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}
	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse registry file %s: %w", path, err)
	}
	return build(file)
}

func build(file registryFile) (*Registry, error) {
	r := &Registry{
		pools:            make(map[string]string, len(file.Pools)),
		notariesByAddr:   make(map[string][]Notary),
		turnstileAddress: file.TurnstileAddress,
		swapAddrPrefix:   file.SwapAddrPrefix,
	}
	if r.swapAddrPrefix == "" {
		r.swapAddrPrefix = defaultSwapAddrPrefix
	}
	pools := file.Pools
	if len(pools) == 0 {
		pools = defaultPools
	}
	for name, addr := range pools {
		r.pools[addr] = name
	}

	names := make([]string, 0, len(file.Seasons))
	for name := range file.Seasons {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, seasonName := range names {
		src := file.Seasons[seasonName]
		r.seasons = append(r.seasons, Season{
			Name:        seasonName,
			StartHeight: src.StartHeight,
			EndHeight:   src.EndHeight,
		})
		for notaryName, entry := range src.Notaries {
			addr := entry.TAddr
			if addr == "" && entry.PubKey != "" {
				derived, err := pirate.PubKeyToAddress(entry.PubKey)
				if err != nil {
					return nil, fmt.Errorf("season %s notary %s: %w", seasonName, notaryName, err)
				}
				addr = derived
			}
			if addr == "" {
				continue
			}
			r.notariesByAddr[addr] = append(r.notariesByAddr[addr], Notary{
				Name:    notaryName,
				Season:  seasonName,
				Address: addr,
			})
		}
	}
	sort.Slice(r.seasons, func(i, j int) bool {
		return r.seasons[i].StartHeight < r.seasons[j].StartHeight
	})
	return r, nil
}

// NotaryAt reports whether addr is a registered notary address and resolves
// its season for the given block height. A known address whose seasons do not
// cover the height still matches, with an empty season.
func (r *Registry) NotaryAt(addr string, height uint64) (Notary, bool) {
	entries, ok := r.notariesByAddr[addr]
	if !ok {
		return Notary{}, false
	}
	for _, entry := range entries {
		season, ok := r.seasonByName(entry.Season)
		if !ok {
			continue
		}
		if height >= season.StartHeight && (season.EndHeight == 0 || height < season.EndHeight) {
			return entry, true
		}
	}
	first := entries[0]
	first.Season = ""
	return first, true
}

func (r *Registry) seasonByName(name string) (Season, bool) {
	for _, season := range r.seasons {
		if season.Name == name {
			return season, true
		}
	}
	return Season{}, false
}

// PoolName resolves a known mining pool address to its display name.
func (r *Registry) PoolName(addr string) (string, bool) {
	name, ok := r.pools[addr]
	return name, ok
}

// PoolAddresses returns all registered pool addresses.
func (r *Registry) PoolAddresses() []string {
	addrs := make([]string, 0, len(r.pools))
	for addr := range r.pools {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	return addrs
}

// TurnstileAddress returns the canonical turnstile address, empty when the
// deployment has none configured.
func (r *Registry) TurnstileAddress() string {
	return r.turnstileAddress
}

// SwapAddrPrefix returns the address prefix of swap-contract script hashes.
func (r *Registry) SwapAddrPrefix() string {
	return r.swapAddrPrefix
}
