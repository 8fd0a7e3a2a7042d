// Package chain defines parameters for supported EVM-compatible chains.
// All chain-specific values are hardcoded here - no external configuration needed.
package chain

import "sync"

// Network represents mainnet or testnet.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// Params holds the parameters of one EVM chain.
type Params struct {
	Symbol      string
	Name        string
	ChainID     uint32
	Decimals    uint8
	NativeToken string

	// DefaultRPC is a public JSON-RPC endpoint usable when no endpoint is
	// configured explicitly.
	DefaultRPC string
}

type registryKey struct {
	symbol  string
	network Network
}

var (
	mu       sync.RWMutex
	registry = make(map[registryKey]*Params)
	byID     = make(map[uint32]*Params)
)

// Register adds chain parameters to the registry. Called from init().
func Register(symbol string, network Network, params *Params) {
	mu.Lock()
	defer mu.Unlock()
	registry[registryKey{symbol, network}] = params
	byID[params.ChainID] = params
}

// Get returns the parameters for a symbol on a network.
func Get(symbol string, network Network) (*Params, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[registryKey{symbol, network}]
	return p, ok
}

// ByChainID returns the parameters for a chain id.
func ByChainID(id uint32) (*Params, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := byID[id]
	return p, ok
}

// IsSupported reports whether a symbol is registered on any network.
func IsSupported(symbol string) bool {
	mu.RLock()
	defer mu.RUnlock()
	for k := range registry {
		if k.symbol == symbol {
			return true
		}
	}
	return false
}

// Supported returns the registered symbols on a network.
func Supported(network Network) []string {
	mu.RLock()
	defer mu.RUnlock()
	var out []string
	for k := range registry {
		if k.network == network {
			out = append(out, k.symbol)
		}
	}
	return out
}
