// Package client implements the JSON-RPC chain facade: transport, codec,
// and the operations exposed to library users.
package client

import (
	"errors"
	"fmt"
)

// ErrNotStarted is returned when a state-dependent operation runs before Start.
var ErrNotStarted = errors.New("chain not started")

// Error codes used by the JSON codec and the send pipeline. Remote RPC
// errors keep the code reported by the node.
const (
	// CodeNonceUnavailable prefixes a nonce-query sub-failure inside Send.
	CodeNonceUnavailable = -1
	// CodeJSONParse marks an unparsable response body.
	CodeJSONParse = -2
	// CodeInvalidJSON marks a response with neither "result" nor "error".
	CodeInvalidJSON = -3
	// CodeMissingField marks a JSON object missing a required field.
	CodeMissingField = -40
	// CodeGasPriceUnavailable prefixes a gas-price sub-failure inside Send.
	CodeGasPriceUnavailable = -41
)

// RPCError carries the (code, message) pair of a failed operation: either a
// remote node error passed through verbatim, an HTTP status, or one of the
// local codes above.
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
