// Package crypto provides the Ed25519 signing keys used by solkey.
package crypto

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/Klingon-tech/solkey/pkg/types"
)

// Key sizes in bytes.
const (
	SeedSize      = ed25519.SeedSize
	KeypairSize   = ed25519.PrivateKeySize
	SignatureSize = ed25519.SignatureSize
)

// ErrInvalidKeypair is returned when serialized keypair bytes are malformed
// or their public half does not match the secret half.
var ErrInvalidKeypair = errors.New("invalid keypair")

var _ Signer = (*Keypair)(nil)

// Signer signs messages with an Ed25519 private key.
type Signer interface {
	// Sign produces a 64-byte Ed25519 signature over msg.
	Sign(msg []byte) []byte
	// PublicKey returns the verification key.
	PublicKey() types.PublicKey
}

// Keypair holds an Ed25519 private key in its 64-byte form
// (32-byte secret seed followed by the 32-byte public key).
type Keypair struct {
	key ed25519.PrivateKey
}

// KeypairFromSeed derives the keypair for a 32-byte secret seed. The public
// key is the curve base point multiplied by the clamped seed hash, so the same
// seed always yields the same keypair.
func KeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("key seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	return &Keypair{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// KeypairFromBytes restores a keypair from its 64-byte serialized form.
// The embedded public key must match the one derived from the seed half.
func KeypairFromBytes(b []byte) (*Keypair, error) {
	if len(b) != KeypairSize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKeypair, KeypairSize, len(b))
	}
	kp, err := KeypairFromSeed(b[:SeedSize])
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(kp.key[SeedSize:], b[SeedSize:]) {
		kp.Zero()
		return nil, fmt.Errorf("%w: public key does not match secret key", ErrInvalidKeypair)
	}
	return kp, nil
}

// PublicKey returns the verification key.
func (kp *Keypair) PublicKey() types.PublicKey {
	var pk types.PublicKey
	copy(pk[:], kp.key[SeedSize:])
	return pk
}

// Seed returns a copy of the 32-byte secret seed.
func (kp *Keypair) Seed() []byte {
	seed := make([]byte, SeedSize)
	copy(seed, kp.key[:SeedSize])
	return seed
}

// Bytes returns a copy of the 64-byte serialized keypair.
func (kp *Keypair) Bytes() []byte {
	b := make([]byte, KeypairSize)
	copy(b, kp.key)
	return b
}

// Sign produces an Ed25519 signature over msg. Ed25519 signing is
// deterministic: the same key and message always give the same signature.
func (kp *Keypair) Sign(msg []byte) []byte {
	return ed25519.Sign(kp.key, msg)
}

// Zero securely zeroes the private key memory.
func (kp *Keypair) Zero() {
	zero(kp.key)
}

// Verify checks an Ed25519 signature against msg and a public key.
// Returns false on any error.
func Verify(pub types.PublicKey, msg, sig []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
