// Package wallet provides secp256k1 key handling, address derivation, and
// Ethereum transaction assembly and signing.
package wallet

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/quartznode/evmkit/internal/types"
	"github.com/quartznode/evmkit/pkg/helpers"
)

// ErrSignatureFailed is returned when the ECDSA primitive rejects its input.
var ErrSignatureFailed = errors.New("signature generation failed")

// PublicKeyBytes returns the 64-byte uncompressed public key with the
// leading 0x04 marker discarded, as used for Ethereum address derivation.
func PublicKeyBytes(key *btcec.PrivateKey) []byte {
	return key.PubKey().SerializeUncompressed()[1:]
}

// PublicKeyToAddress derives the Ethereum address from a public key:
// the last 20 bytes of Keccak256(uncompressed pubkey without 0x04).
func PublicKeyToAddress(pub *btcec.PublicKey) types.Address {
	hash := helpers.Keccak256(pub.SerializeUncompressed()[1:])
	addr, _ := types.AddressFromBytes(hash)
	return addr
}

// signDigest signs a 32-byte digest and returns the signature scalars with
// leading zeros stripped plus the recovery id (0 or 1). Signing is
// deterministic (RFC 6979), so identical inputs reproduce identical
// signatures.
func signDigest(key *btcec.PrivateKey, digest []byte) (r, s []byte, recoveryID byte, err error) {
	if len(digest) != 32 {
		return nil, nil, 0, fmt.Errorf("%w: digest must be 32 bytes, got %d", ErrSignatureFailed, len(digest))
	}

	// SignCompact returns v || r || s (65 bytes) with v in 27/28 form.
	sig := btcecdsa.SignCompact(key, digest, false)
	if len(sig) != 65 {
		return nil, nil, 0, ErrSignatureFailed
	}

	r = helpers.TruncateLeadingZeros(sig[1:33])
	s = helpers.TruncateLeadingZeros(sig[33:65])
	return r, s, sig[0] - 27, nil
}

// Sign signs a 32-byte digest and returns the Ethereum wire form
// r || s || v (65 bytes) with v in 0/1 form.
func Sign(key *btcec.PrivateKey, digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("%w: digest must be 32 bytes, got %d", ErrSignatureFailed, len(digest))
	}
	sig := btcecdsa.SignCompact(key, digest, false)
	if len(sig) != 65 {
		return nil, ErrSignatureFailed
	}
	out := make([]byte, 65)
	copy(out[:64], sig[1:65])
	out[64] = sig[0] - 27
	return out, nil
}

// PersonalSign signs a message in the personal_sign format:
// keccak256("\x19Ethereum Signed Message:\n" + len(message) + message).
func PersonalSign(key *btcec.PrivateKey, message []byte) ([]byte, error) {
	prefix := fmt.Sprintf("\x19Ethereum Signed Message:\n%d", len(message))
	data := append([]byte(prefix), message...)
	return Sign(key, helpers.Keccak256(data))
}

// SignTypedData signs an EIP-712 digest:
// keccak256("\x19\x01" || domainSeparator || structHash).
func SignTypedData(key *btcec.PrivateKey, domainSeparator, structHash []byte) ([]byte, error) {
	data := make([]byte, 0, 2+len(domainSeparator)+len(structHash))
	data = append(data, 0x19, 0x01)
	data = append(data, domainSeparator...)
	data = append(data, structHash...)
	return Sign(key, helpers.Keccak256(data))
}
