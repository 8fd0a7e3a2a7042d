package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/quartznode/evmkit/internal/types"
)

type rpcRequest struct {
	Method  string        `json:"method"`
	ID      uint64        `json:"id"`
	JSONRPC string        `json:"jsonrpc"`
	Params  []interface{} `json:"params"`
}

type rpcErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcErrorBody   `json:"error"`
}

var jsonNull = []byte("null")

// call performs one JSON-RPC request and returns the raw "result" value.
// A JSON null result returns a nil RawMessage with no error. assertStarted
// gates state-dependent operations; only the chain-id query bypasses it.
func (c *Chain) call(ctx context.Context, method string, params []interface{}, assertStarted bool) (json.RawMessage, error) {
	if assertStarted && !c.started {
		return nil, ErrNotStarted
	}
	if params == nil {
		params = []interface{}{}
	}

	body, err := json.Marshal(rpcRequest{
		Method:  method,
		ID:      c.requestID.Add(1),
		JSONRPC: "2.0",
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	c.log.Debug("rpc request", "method", method)

	resp, err := c.transport.MakeRequest(ctx, c.url, http.MethodPost, body)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		c.log.Warn("rpc transport failure", "method", method, "status", resp.Status)
		return nil, &RPCError{Code: resp.Status, Message: "HTTP Error"}
	}

	var decoded rpcResponse
	if len(resp.Body) == 0 {
		return nil, &RPCError{Code: CodeJSONParse, Message: "empty response body"}
	}
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return nil, &RPCError{Code: CodeJSONParse, Message: "unable to parse response: " + err.Error()}
	}

	if decoded.Error != nil {
		c.log.Warn("rpc error", "method", method, "code", decoded.Error.Code, "message", decoded.Error.Message)
		return nil, &RPCError{Code: decoded.Error.Code, Message: decoded.Error.Message}
	}
	if decoded.Result == nil {
		return nil, &RPCError{Code: CodeInvalidJSON, Message: "response has neither result nor error"}
	}
	if bytes.Equal(decoded.Result, jsonNull) {
		return nil, nil
	}
	return decoded.Result, nil
}

// callString performs a call whose result must be a JSON string.
func (c *Chain) callString(ctx context.Context, method string, params []interface{}, assertStarted bool) (string, error) {
	raw, err := c.call(ctx, method, params, assertStarted)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &RPCError{Code: CodeJSONParse, Message: "result is not a string"}
	}
	return s, nil
}

// callBigNumber performs a call whose result is a hex quantity string.
func (c *Chain) callBigNumber(ctx context.Context, method string, params []interface{}, assertStarted bool) (types.BigNumber, error) {
	s, err := c.callString(ctx, method, params, assertStarted)
	if err != nil {
		return types.BigNumber{}, err
	}
	n, err := types.ParseHex(s)
	if err != nil {
		return types.BigNumber{}, &RPCError{Code: CodeJSONParse, Message: "result is not a hex quantity: " + s}
	}
	return n, nil
}
