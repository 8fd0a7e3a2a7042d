package types

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/quartznode/evmkit/pkg/helpers"
)

// AddressLength is the byte length of an Ethereum address.
const AddressLength = 20

// ErrInvalidAddress is returned when an address cannot be parsed.
var ErrInvalidAddress = errors.New("invalid address")

// Address is a fixed 20-byte Ethereum address. The canonical textual form
// is lowercase hex with 0x prefix.
type Address [AddressLength]byte

// ParseAddress parses an address from its textual form: 40 hex digits with
// an optional 0x/0X prefix, case-insensitive.
func ParseAddress(s string) (Address, error) {
	s = helpers.StripHexPrefix(strings.TrimSpace(s))
	if len(s) != AddressLength*2 {
		return Address{}, ErrInvalidAddress
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, ErrInvalidAddress
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// AddressFromBytes constructs an address from the trailing 20 bytes of b.
// b must be at least 20 bytes long.
func AddressFromBytes(b []byte) (Address, error) {
	if len(b) < AddressLength {
		return Address{}, ErrInvalidAddress
	}
	var a Address
	copy(a[:], b[len(b)-AddressLength:])
	return a, nil
}

// Bytes returns a copy of the 20-byte value.
func (a Address) Bytes() []byte {
	return append([]byte(nil), a[:]...)
}

// String returns the canonical lowercase form: "0x" + 40 hex digits.
func (a Address) String() string {
	return helpers.BytesToHex(a[:])
}

// IsZero reports whether the address is all zeros.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Checksum returns the EIP-55 mixed-case display form.
func (a Address) Checksum() string {
	lower := hex.EncodeToString(a[:])
	hash := hex.EncodeToString(helpers.Keccak256([]byte(lower)))

	out := make([]byte, 0, 2+AddressLength*2)
	out = append(out, '0', 'x')
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'f' && hash[i] >= '8' {
			c = c - 'a' + 'A'
		}
		out = append(out, c)
	}
	return string(out)
}
