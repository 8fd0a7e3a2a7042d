// Package abi implements Solidity contract-ABI encoding for flat argument
// lists: the function selector plus head/tail encoded 32-byte words.
package abi

import (
	"github.com/quartznode/evmkit/internal/types"
	"github.com/quartznode/evmkit/pkg/helpers"
)

// Kind identifies the variant of an Item.
type Kind uint8

const (
	KindUint Kind = iota
	KindBool
	KindAddress
	KindString
	KindBytes
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Item is an immutable tagged value describing one ABI argument. Leaf kinds
// carry payload bytes; KindArray carries child items. The handle is the
// Solidity type name used to build the function signature.
type Item struct {
	kind     Kind
	payload  []byte
	children []Item
	handle   string
}

// Uint builds an unsigned-integer argument, handle "uint256".
func Uint(v uint64) Item {
	return Item{kind: KindUint, payload: helpers.Uint64ToBytes(v), handle: "uint256"}
}

// UintBig builds an unsigned-integer argument from a BigNumber, handle "uint256".
func UintBig(n types.BigNumber) Item {
	return Item{kind: KindUint, payload: n.Bytes(), handle: "uint256"}
}

// Bool builds a boolean argument, handle "bool".
func Bool(v bool) Item {
	b := byte(0)
	if v {
		b = 1
	}
	return Item{kind: KindBool, payload: []byte{b}, handle: "bool"}
}

// Addr builds an address argument from its 20 raw bytes, handle "address".
func Addr(a types.Address) Item {
	return Item{kind: KindAddress, payload: a.Bytes(), handle: "address"}
}

// String builds a dynamic string argument from UTF-8 bytes, handle "string".
func String(s string) Item {
	return Item{kind: KindString, payload: []byte(s), handle: "string"}
}

// Bytes builds a dynamic byte-sequence argument, handle "bytes".
func Bytes(b []byte) Item {
	return Item{kind: KindBytes, payload: append([]byte(nil), b...), handle: "bytes"}
}

// Array builds a dynamic array of items. The handle is derived from the
// first element's handle.
func Array(items ...Item) Item {
	handle := "[]"
	if len(items) > 0 {
		handle = items[0].handle + "[]"
	}
	return Item{kind: KindArray, children: append([]Item(nil), items...), handle: handle}
}

// WithHandle returns a copy of the item with a different ABI type handle
// (e.g. "uint64" instead of the default "uint256").
func (i Item) WithHandle(handle string) Item {
	i.handle = handle
	return i
}

// Kind returns the variant tag.
func (i Item) Kind() Kind {
	return i.kind
}

// Handle returns the ABI type name used in the function signature.
func (i Item) Handle() string {
	return i.handle
}

// Dynamic reports whether the item uses the dynamic head/tail layout.
func (i Item) Dynamic() bool {
	switch i.kind {
	case KindString, KindBytes, KindArray:
		return true
	default:
		return false
	}
}
