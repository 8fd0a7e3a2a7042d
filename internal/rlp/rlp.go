// Package rlp implements Recursive Length Prefix encoding, the canonical
// Ethereum serialization for byte strings and nested lists.
// See: https://ethereum.org/en/developers/docs/data-structures-and-encoding/rlp/
package rlp

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/quartznode/evmkit/pkg/helpers"
)

// ErrTooLong is returned when a payload length requires more than 8 length bytes.
var ErrTooLong = errors.New("rlp: length exceeds 8-byte encoding budget")

// maxLengthBytes is the number of length bytes expressible after the
// 0xB7/0xF7 prefixes (0xBF-0xB7 and 0xFF-0xF7).
const maxLengthBytes = 8

// Encode serializes a value as RLP. Supported types: []byte, string,
// uint32, uint64, *big.Int (non-negative, minimal big-endian bytes) and
// []interface{} for nested lists.
func Encode(v interface{}) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return EncodeBytes(x)
	case string:
		return EncodeBytes([]byte(x))
	case uint32:
		return EncodeUint(uint64(x))
	case uint64:
		return EncodeUint(x)
	case *big.Int:
		if x == nil || x.Sign() == 0 {
			return EncodeBytes(nil)
		}
		return EncodeBytes(x.Bytes())
	case []interface{}:
		return EncodeList(x)
	default:
		return nil, fmt.Errorf("rlp: unsupported type %T", v)
	}
}

// EncodeBytes serializes a byte string. The empty string encodes as 0x80;
// a single byte below 0x80 encodes as itself.
func EncodeBytes(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return []byte{0x80}, nil
	}
	if len(b) == 1 && b[0] < 0x80 {
		return []byte{b[0]}, nil
	}
	if len(b) <= 55 {
		return append([]byte{byte(0x80 + len(b))}, b...), nil
	}
	lenBytes := helpers.Uint64ToBytes(uint64(len(b)))
	if len(lenBytes) > maxLengthBytes {
		return nil, ErrTooLong
	}
	out := append([]byte{byte(0xb7 + len(lenBytes))}, lenBytes...)
	return append(out, b...), nil
}

// EncodeUint serializes an unsigned integer from its minimal big-endian bytes.
// Zero encodes as the empty string (0x80).
func EncodeUint(n uint64) ([]byte, error) {
	return EncodeBytes(helpers.Uint64ToBytes(n))
}

// EncodeList serializes a list by concatenating the item encodings and
// prefixing the payload length.
func EncodeList(items []interface{}) ([]byte, error) {
	var payload []byte
	for _, item := range items {
		enc, err := Encode(item)
		if err != nil {
			return nil, err
		}
		payload = append(payload, enc...)
	}
	if len(payload) <= 55 {
		return append([]byte{byte(0xc0 + len(payload))}, payload...), nil
	}
	lenBytes := helpers.Uint64ToBytes(uint64(len(payload)))
	if len(lenBytes) > maxLengthBytes {
		return nil, ErrTooLong
	}
	out := append([]byte{byte(0xf7 + len(lenBytes))}, lenBytes...)
	return append(out, payload...), nil
}
