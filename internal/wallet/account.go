package wallet

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/quartznode/evmkit/internal/types"
	"github.com/quartznode/evmkit/pkg/helpers"
)

// PrivateKeyLength is the byte length of a secp256k1 private key.
const PrivateKeyLength = 32

// ErrInvalidPrivateKey is returned when a private key is not exactly 32 bytes.
var ErrInvalidPrivateKey = errors.New("private key must be 32 bytes")

// Account owns a private key and its derived address. The key stays in
// memory for the lifetime of the account; Close zeroes it.
type Account struct {
	key     *secp256k1.PrivateKey
	address types.Address
}

// NewAccount parses a private key from 64 hex characters (optional 0x
// prefix) and derives the account address.
func NewAccount(privHex string) (*Account, error) {
	raw, err := helpers.FromHex(privHex)
	if err != nil {
		return nil, err
	}
	return NewAccountFromBytes(raw)
}

// NewAccountFromBytes constructs an account from a raw 32-byte private key.
func NewAccountFromBytes(raw []byte) (*Account, error) {
	if len(raw) != PrivateKeyLength {
		return nil, ErrInvalidPrivateKey
	}
	key := secp256k1.PrivKeyFromBytes(raw)
	return &Account{
		key:     key,
		address: PublicKeyToAddress(key.PubKey()),
	}, nil
}

// Address returns the derived Ethereum address.
func (a *Account) Address() types.Address {
	return a.address
}

// PrivateKey exposes the key for the signer.
func (a *Account) PrivateKey() *secp256k1.PrivateKey {
	return a.key
}

// Close zeroes the private key material.
func (a *Account) Close() {
	a.key.Zero()
}
