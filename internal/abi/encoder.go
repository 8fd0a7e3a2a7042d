package abi

import (
	"fmt"

	"github.com/quartznode/evmkit/pkg/helpers"
)

// WordSize is the ABI slot width in bytes.
const WordSize = 32

// EncodeItem serializes a single item into a multiple of 32 bytes.
//
// Static leaves occupy one word, right-aligned and zero-left-padded.
// Strings and byte sequences emit a length word followed by the payload
// zero-right-padded to a word boundary. Arrays emit an element-count word
// followed by each element's static encoding.
func EncodeItem(item Item) ([]byte, error) {
	switch item.kind {
	case KindUint, KindBool, KindAddress:
		return encodeStatic(item)

	case KindString, KindBytes:
		out := lengthWord(len(item.payload))
		return appendPadded(out, item.payload), nil

	case KindArray:
		out := lengthWord(len(item.children))
		for _, child := range item.children {
			if child.Dynamic() {
				return nil, fmt.Errorf("abi: nested dynamic array elements not supported")
			}
			enc, err := encodeStatic(child)
			if err != nil {
				return nil, err
			}
			out = append(out, enc...)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("abi: unknown item kind %d", item.kind)
	}
}

func encodeStatic(item Item) ([]byte, error) {
	if len(item.payload) > WordSize {
		return nil, fmt.Errorf("abi: %s payload is %d bytes, exceeds one word", item.kind, len(item.payload))
	}
	return wordFor(item.payload), nil
}

// encodeArguments performs the head/tail layout over a flat argument list.
// The head holds inline words for static arguments and byte offsets for
// dynamic ones; the tail holds the dynamic encodings in argument order.
func encodeArguments(args []Item) ([]byte, error) {
	headSize := 0
	encoded := make([][]byte, len(args))
	for i, arg := range args {
		enc, err := EncodeItem(arg)
		if err != nil {
			return nil, err
		}
		encoded[i] = enc
		if arg.Dynamic() {
			headSize += WordSize
		} else {
			headSize += len(enc)
		}
	}

	head := make([]byte, 0, headSize)
	var tail []byte
	offset := headSize
	for i, arg := range args {
		if arg.Dynamic() {
			head = append(head, lengthWord(offset)...)
			tail = append(tail, encoded[i]...)
			offset += len(encoded[i])
		} else {
			head = append(head, encoded[i]...)
		}
	}
	return append(head, tail...), nil
}

// wordFor right-aligns b in a fresh 32-byte slot. b must fit in one word.
func wordFor(b []byte) []byte {
	word := make([]byte, WordSize)
	copy(word[WordSize-len(b):], b)
	return word
}

// lengthWord returns n as a 32-byte big-endian word.
func lengthWord(n int) []byte {
	return wordFor(helpers.Uint64ToBytes(uint64(n)))
}

// appendPadded appends b to out followed by enough zero bytes to land on a
// word boundary.
func appendPadded(out, b []byte) []byte {
	out = append(out, b...)
	if rem := len(b) % WordSize; rem != 0 {
		out = append(out, make([]byte, WordSize-rem)...)
	}
	return out
}
