// Package types provides the value types shared across the library:
// arbitrary-precision non-negative integers and Ethereum addresses.
package types

import (
	"errors"
	"math/big"
	"strings"

	"github.com/quartznode/evmkit/pkg/helpers"
)

// ErrOverflow is returned when a numeric conversion would lose data.
var ErrOverflow = errors.New("value overflows target type")

var maxUint32 = new(big.Int).SetUint64(1<<32 - 1)

// BigNumber is an immutable non-negative arbitrary-precision integer.
// The zero value represents 0.
type BigNumber struct {
	n big.Int
}

// ParseHex parses a BigNumber from a hex string. Leading whitespace and an
// optional 0x/0X prefix are tolerated. Odd digit counts are legal: JSON-RPC
// quantities such as "0x9" are minimally encoded.
func ParseHex(s string) (BigNumber, error) {
	s = strings.TrimLeft(s, " \t\r\n")
	s = helpers.StripHexPrefix(s)
	if s == "" {
		return BigNumber{}, helpers.ErrInvalidHex
	}
	var b BigNumber
	if _, ok := b.n.SetString(s, 16); !ok || b.n.Sign() < 0 {
		return BigNumber{}, helpers.ErrInvalidHex
	}
	return b, nil
}

// ParseDecimal parses a BigNumber from a base-10 string.
func ParseDecimal(s string) (BigNumber, error) {
	var b BigNumber
	if _, ok := b.n.SetString(strings.TrimSpace(s), 10); !ok || b.n.Sign() < 0 {
		return BigNumber{}, errors.New("invalid decimal number")
	}
	return b, nil
}

// FromUint32 constructs a BigNumber from a uint32.
func FromUint32(x uint32) BigNumber {
	var b BigNumber
	b.n.SetUint64(uint64(x))
	return b
}

// FromUint64 constructs a BigNumber from a uint64.
func FromUint64(x uint64) BigNumber {
	var b BigNumber
	b.n.SetUint64(x)
	return b
}

// FromBytes constructs a BigNumber from minimal big-endian bytes.
// An empty slice yields 0.
func FromBytes(b []byte) BigNumber {
	var bn BigNumber
	bn.n.SetBytes(b)
	return bn
}

// FromBigInt constructs a BigNumber by copying a *big.Int.
// Negative values are rejected.
func FromBigInt(n *big.Int) (BigNumber, error) {
	if n == nil {
		return BigNumber{}, nil
	}
	if n.Sign() < 0 {
		return BigNumber{}, errors.New("negative value")
	}
	var b BigNumber
	b.n.Set(n)
	return b, nil
}

// BigInt returns a copy of the value as a *big.Int.
func (b BigNumber) BigInt() *big.Int {
	return new(big.Int).Set(&b.n)
}

// Bytes returns the minimal big-endian representation. Zero yields an empty slice.
func (b BigNumber) Bytes() []byte {
	return b.n.Bytes()
}

// HexString returns the value as lowercase hex with 0x prefix, two
// characters per byte. Zero is "0x00".
func (b BigNumber) HexString() string {
	s := b.n.Text(16)
	if len(s)%2 != 0 {
		s = "0" + s
	}
	if b.n.Sign() == 0 {
		s = "00"
	}
	return helpers.AddHexPrefix(s)
}

// QuantityHex returns the value in the JSON-RPC quantity form: 0x-prefixed,
// minimal digits, "0x0" for zero.
func (b BigNumber) QuantityHex() string {
	return helpers.AddHexPrefix(b.n.Text(16))
}

// DecimalString returns the base-10 textual form, no leading zeros except "0".
func (b BigNumber) DecimalString() string {
	return b.n.String()
}

// Uint32 returns the value as a uint32, or ErrOverflow if it does not fit.
func (b BigNumber) Uint32() (uint32, error) {
	if b.n.Cmp(maxUint32) > 0 {
		return 0, ErrOverflow
	}
	return uint32(b.n.Uint64()), nil
}

// Uint64 returns the value as a uint64, or ErrOverflow if it does not fit.
func (b BigNumber) Uint64() (uint64, error) {
	if !b.n.IsUint64() {
		return 0, ErrOverflow
	}
	return b.n.Uint64(), nil
}

// IsZero reports whether the value is 0.
func (b BigNumber) IsZero() bool {
	return b.n.Sign() == 0
}

// Equal reports whether two BigNumbers have the same value.
func (b BigNumber) Equal(other BigNumber) bool {
	return b.n.Cmp(&other.n) == 0
}

// Cmp compares b and other: -1 if b < other, 0 if equal, 1 if b > other.
func (b BigNumber) Cmp(other BigNumber) int {
	return b.n.Cmp(&other.n)
}

func (b BigNumber) String() string {
	return b.DecimalString()
}
