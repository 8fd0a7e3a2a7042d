package client

import (
	"context"
	"sync/atomic"

	"github.com/quartznode/evmkit/internal/abi"
	"github.com/quartznode/evmkit/internal/types"
	"github.com/quartznode/evmkit/internal/wallet"
	"github.com/quartznode/evmkit/pkg/logging"
)

// Chain is the facade over one EVM JSON-RPC endpoint. Methods are strictly
// sequential: each blocks on its transport round trip. Callers wanting
// overlapping requests run multiple Chain values.
type Chain struct {
	url       string
	transport Transport
	id        uint32
	started   bool
	requestID atomic.Uint64
	log       *logging.Logger
}

// New creates a chain facade for the given endpoint. The chain id is
// fetched from the node during Start.
func New(url string, transport Transport) *Chain {
	return NewWithChainID(url, transport, 0)
}

// NewWithChainID creates a chain facade with a caller-provided chain id,
// skipping the eth_chainId query during Start.
func NewWithChainID(url string, transport Transport, chainID uint32) *Chain {
	return &Chain{
		url:       url,
		transport: transport,
		id:        chainID,
		log:       logging.Component("chain"),
	}
}

// SetLogger replaces the facade's logger.
func (c *Chain) SetLogger(log *logging.Logger) {
	c.log = log
}

// Start transitions the chain to ready, fetching the chain id from the
// node unless one was provided at construction.
func (c *Chain) Start(ctx context.Context) error {
	if c.id == 0 {
		id, err := c.LoadChainID(ctx)
		if err != nil {
			c.log.Error("unable to fetch chain id", "err", err)
			return err
		}
		c.id = id
	}
	c.started = true
	return nil
}

// Started reports whether Start has completed.
func (c *Chain) Started() bool {
	return c.started
}

// ID returns the chain id (0 before Start when none was provided).
func (c *Chain) ID() uint32 {
	return c.id
}

// LoadChainID queries eth_chainId. Usable before Start.
func (c *Chain) LoadChainID(ctx context.Context) (uint32, error) {
	n, err := c.callBigNumber(ctx, "eth_chainId", nil, false)
	if err != nil {
		return 0, err
	}
	return n.Uint32()
}

// GasPrice queries eth_gasPrice and returns the price in wei.
func (c *Chain) GasPrice(ctx context.Context) (types.BigNumber, error) {
	return c.callBigNumber(ctx, "eth_gasPrice", nil, true)
}

// Balance queries eth_getBalance for the latest block, in wei.
func (c *Chain) Balance(ctx context.Context, addr types.Address) (types.BigNumber, error) {
	return c.callBigNumber(ctx, "eth_getBalance", []interface{}{addr.String(), "latest"}, true)
}

// ERC20Balance returns the holder's balance on an ERC-20 token contract
// via a balanceOf view call.
func (c *Chain) ERC20Balance(ctx context.Context, holder, token types.Address) (types.BigNumber, error) {
	result, err := c.ViewCall(ctx, holder, token, abi.NewERC20BalanceOf(holder))
	if err != nil {
		return types.BigNumber{}, err
	}
	n, err := types.ParseHex(result)
	if err != nil {
		return types.BigNumber{}, &RPCError{Code: CodeJSONParse, Message: "balanceOf returned non-numeric data"}
	}
	return n, nil
}

// TransactionCount queries eth_getTransactionCount for the latest block.
// The result feeds the nonce of the next transaction.
func (c *Chain) TransactionCount(ctx context.Context, addr types.Address) (types.BigNumber, error) {
	return c.callBigNumber(ctx, "eth_getTransactionCount", []interface{}{addr.String(), "latest"}, true)
}

// ViewCall executes a read-only contract call via eth_call and returns the
// raw hex result string.
func (c *Chain) ViewCall(ctx context.Context, from, to types.Address, call *abi.ContractCall) (string, error) {
	data, err := call.Data()
	if err != nil {
		return "", err
	}
	callObj := map[string]interface{}{
		"from": from.String(),
		"to":   to.String(),
		"data": bytesHex(data),
	}
	return c.callString(ctx, "eth_call", []interface{}{callObj, "latest"}, true)
}

// Send builds, signs, and submits a legacy transaction, returning the
// transaction hash reported by the node. amount is in wei. A nil gasPrice
// is resolved via eth_gasPrice; a non-nil contract call makes this a
// contract execution with the call's encoding in the data field.
//
// The pipeline uses one nonce snapshot: nonce query, local signing, then
// eth_sendRawTransaction, in that order.
func (c *Chain) Send(ctx context.Context, from *wallet.Account, to types.Address,
	amount types.BigNumber, gasLimit uint32, gasPrice *types.BigNumber, call *abi.ContractCall) (string, error) {

	raw, err := c.buildSignedTx(ctx, from, to, amount, gasLimit, gasPrice, call)
	if err != nil {
		return "", err
	}
	return c.callString(ctx, "eth_sendRawTransaction", []interface{}{raw}, true)
}

// EstimateGas builds and signs the transaction exactly like Send and
// submits it to eth_estimateGas, returning the gas estimate.
func (c *Chain) EstimateGas(ctx context.Context, from *wallet.Account, to types.Address,
	amount types.BigNumber, gasLimit uint32, gasPrice *types.BigNumber, call *abi.ContractCall) (types.BigNumber, error) {

	raw, err := c.buildSignedTx(ctx, from, to, amount, gasLimit, gasPrice, call)
	if err != nil {
		return types.BigNumber{}, err
	}
	return c.callBigNumber(ctx, "eth_estimateGas", []interface{}{raw}, true)
}

// buildSignedTx runs the shared front half of Send and EstimateGas:
// nonce query, gas-price resolution, transaction assembly, signing.
func (c *Chain) buildSignedTx(ctx context.Context, from *wallet.Account, to types.Address,
	amount types.BigNumber, gasLimit uint32, gasPrice *types.BigNumber, call *abi.ContractCall) (string, error) {

	if !c.started {
		return "", ErrNotStarted
	}

	nonceBig, err := c.TransactionCount(ctx, from.Address())
	if err != nil {
		c.log.Warn("nonce query failed", "err", err)
		return "", &RPCError{Code: CodeNonceUnavailable, Message: "unable to retrieve nonce"}
	}
	nonce, err := nonceBig.Uint32()
	if err != nil {
		return "", &RPCError{Code: CodeNonceUnavailable, Message: "unable to retrieve nonce"}
	}

	var gp types.BigNumber
	if gasPrice != nil {
		gp = *gasPrice
	} else {
		gp, err = c.GasPrice(ctx)
		if err != nil {
			c.log.Warn("gas price query failed", "err", err)
			return "", &RPCError{Code: CodeGasPriceUnavailable, Message: "unable to fetch gas price"}
		}
	}

	var data []byte
	if call != nil {
		data, err = call.Data()
		if err != nil {
			return "", err
		}
	}

	tx, err := wallet.SignTx(from, wallet.TransactionProperties{
		Nonce:    nonce,
		GasPrice: gp,
		GasLimit: gasLimit,
		To:       to,
		Value:    amount,
		Data:     data,
		ChainID:  c.id,
		Standard: wallet.StandardLegacy,
	})
	if err != nil {
		return "", err
	}
	return tx.SerializeHex()
}

// TransactionReceipt queries eth_getTransactionReceipt. A nil receipt with
// nil error means the transaction is unknown or not yet mined.
func (c *Chain) TransactionReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	raw, err := c.call(ctx, "eth_getTransactionReceipt", []interface{}{txHash}, true)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return parseReceipt(raw)
}

// BlockInformation queries eth_getBlockByHash (header only). A nil result
// with nil error means the block is unknown.
func (c *Chain) BlockInformation(ctx context.Context, blockHash string) (*BlockInformation, error) {
	raw, err := c.call(ctx, "eth_getBlockByHash", []interface{}{blockHash, false}, true)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return parseBlockInformation(raw)
}
