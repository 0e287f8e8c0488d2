package wallet

import (
	"fmt"

	"github.com/Klingon-tech/solkey/pkg/crypto"
)

// DeriveKeypair derives the Ed25519 keypair whose secret key is the first
// 32 bytes of seed.
func DeriveKeypair(seed []byte) (*crypto.Keypair, error) {
	if len(seed) < crypto.SeedSize {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrInvalidSeedLength, crypto.SeedSize, len(seed))
	}
	return crypto.KeypairFromSeed(seed[:crypto.SeedSize])
}
