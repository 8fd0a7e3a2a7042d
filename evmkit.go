// Package evmkit is a client library for Ethereum-compatible blockchains.
// It derives accounts from private keys, queries chain state over JSON-RPC,
// and builds, ABI-encodes, RLP-encodes, signs, and submits transactions.
//
// The facade types below re-export the implementation packages. A minimal
// transfer looks like:
//
//	acct, _ := evmkit.NewAccount(os.Getenv("PRIVATE_KEY"))
//	defer acct.Close()
//	c := evmkit.NewChain("https://eth.llamarpc.com", evmkit.NewHTTPTransport(0))
//	_ = c.Start(ctx)
//	hash, err := c.Send(ctx, acct, to, amount, 21000, nil, nil)
package evmkit

import (
	"time"

	"github.com/quartznode/evmkit/internal/abi"
	"github.com/quartznode/evmkit/internal/client"
	"github.com/quartznode/evmkit/internal/types"
	"github.com/quartznode/evmkit/internal/wallet"
)

// Value types.
type (
	BigNumber = types.BigNumber
	Address   = types.Address
)

// Contract-call encoding.
type (
	ContractCall = abi.ContractCall
	Item         = abi.Item
)

// Accounts and transactions.
type (
	Account               = wallet.Account
	Transaction           = wallet.Transaction
	TransactionProperties = wallet.TransactionProperties
	SigningStandard       = wallet.SigningStandard
)

// Chain facade and transport.
type (
	Chain         = client.Chain
	Transport     = client.Transport
	HTTPTransport = client.HTTPTransport
	RPCError      = client.RPCError
	Receipt       = client.Receipt
)

// Signing standards.
const (
	StandardLegacy  = wallet.StandardLegacy
	StandardEIP1559 = wallet.StandardEIP1559
)

// ErrNotStarted is returned by chain operations invoked before Start.
var ErrNotStarted = client.ErrNotStarted

// Value constructors.
var (
	ParseHex     = types.ParseHex
	ParseDecimal = types.ParseDecimal
	ParseAddress = types.ParseAddress
)

// ABI argument constructors.
var (
	Uint    = abi.Uint
	UintBig = abi.UintBig
	Bool    = abi.Bool
	Addr    = abi.Addr
	String  = abi.String
	Bytes   = abi.Bytes
	Array   = abi.Array
)

// ERC-20 call constructors.
var (
	NewERC20Transfer  = abi.NewERC20Transfer
	NewERC20BalanceOf = abi.NewERC20BalanceOf
	NewERC20Approve   = abi.NewERC20Approve
	NewERC20Allowance = abi.NewERC20Allowance
)

// NewAccount parses a 32-byte private key from hex and derives its address.
func NewAccount(privHex string) (*Account, error) {
	return wallet.NewAccount(privHex)
}

// NewContractCall builds a contract call with a cached selector.
func NewContractCall(name string, args ...Item) *ContractCall {
	return abi.NewContractCall(name, args...)
}

// NewChain creates a chain facade; the chain id is fetched during Start.
func NewChain(url string, transport Transport) *Chain {
	return client.New(url, transport)
}

// NewChainWithID creates a chain facade with a caller-provided chain id.
func NewChainWithID(url string, transport Transport, chainID uint32) *Chain {
	return client.NewWithChainID(url, transport, chainID)
}

// NewHTTPTransport creates the net/http transport. A zero timeout uses the
// 30-second default.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	return client.NewHTTPTransport(timeout)
}

// SignTx signs transaction properties with the account's key.
func SignTx(acct *Account, props TransactionProperties) (*Transaction, error) {
	return wallet.SignTx(acct, props)
}
