// Package types defines core primitive types shared by solkey packages.
package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/mr-tron/base58"
)

// PublicKeySize is the length of an Ed25519 public key in bytes.
const PublicKeySize = 32

// PublicKey is an Ed25519 verification key. Its text form is base58, the
// account address format used by the ledger.
type PublicKey [PublicKeySize]byte

// PublicKeyFromBytes copies a 32-byte slice into a PublicKey.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		return PublicKey{}, fmt.Errorf("public key must be %d bytes, got %d", PublicKeySize, len(b))
	}
	var pk PublicKey
	copy(pk[:], b)
	return pk, nil
}

// ParsePublicKey decodes a base58 public key string.
func ParsePublicKey(s string) (PublicKey, error) {
	if s == "" {
		return PublicKey{}, fmt.Errorf("empty public key")
	}
	decoded, err := base58.Decode(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("invalid base58 public key: %w", err)
	}
	return PublicKeyFromBytes(decoded)
}

// IsZero returns true if the key is all zeros.
func (pk PublicKey) IsZero() bool {
	return pk == PublicKey{}
}

// String returns the base58-encoded key.
func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

// Hex returns the raw hex-encoded key.
func (pk PublicKey) Hex() string {
	return hex.EncodeToString(pk[:])
}

// Bytes returns a copy of the key as a byte slice.
func (pk PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, pk[:])
	return b
}

// MarshalText encodes the key as base58.
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText decodes a base58 key.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}

// MarshalJSON encodes the key as a base58 string.
func (pk PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(pk.String())
}

// UnmarshalJSON decodes a base58 string into a key.
func (pk *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*pk = PublicKey{}
		return nil
	}
	return pk.UnmarshalText([]byte(s))
}
