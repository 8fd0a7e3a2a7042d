package abi

import (
	"strings"

	"github.com/quartznode/evmkit/pkg/helpers"
)

// SelectorLength is the byte length of a function selector.
const SelectorLength = 4

// ContractCall describes one contract function invocation: the function
// name, its ordered arguments, and the 4-byte selector derived from the
// canonical signature. Immutable after construction.
type ContractCall struct {
	name     string
	args     []Item
	selector [SelectorLength]byte
}

// NewContractCall builds a call for the named function (no parentheses)
// with the given arguments. The selector is computed once here.
func NewContractCall(name string, args ...Item) *ContractCall {
	c := &ContractCall{
		name: name,
		args: append([]Item(nil), args...),
	}
	hash := helpers.Keccak256([]byte(c.Signature()))
	copy(c.selector[:], hash[:SelectorLength])
	return c
}

// Name returns the function name.
func (c *ContractCall) Name() string {
	return c.name
}

// Signature returns the canonical signature: name "(" handles joined by "," ")".
func (c *ContractCall) Signature() string {
	handles := make([]string, len(c.args))
	for i, arg := range c.args {
		handles[i] = arg.Handle()
	}
	return c.name + "(" + strings.Join(handles, ",") + ")"
}

// Selector returns the first four bytes of Keccak256(Signature()).
func (c *ContractCall) Selector() [SelectorLength]byte {
	return c.selector
}

// Data assembles the transaction data field: the selector followed by the
// head/tail encoded argument list.
func (c *ContractCall) Data() ([]byte, error) {
	encoded, err := encodeArguments(c.args)
	if err != nil {
		return nil, err
	}
	return append(c.selector[:], encoded...), nil
}
