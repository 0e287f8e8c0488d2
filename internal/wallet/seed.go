package wallet

import (
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

const (
	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// DeriveSeed stretches a mnemonic and passphrase into a 512-bit seed using
// PBKDF2-HMAC-SHA512 (2048 iterations) as specified in BIP-39. The password
// is the NFKD-normalized sentence and the salt is "mnemonic" followed by the
// NFKD-normalized passphrase. An empty passphrase is the default.
func DeriveSeed(m Mnemonic, passphrase string) []byte {
	password := []byte(norm.NFKD.String(m.Sentence()))
	salt := []byte(seedSaltPrefix + norm.NFKD.String(passphrase))
	return pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
}

// SeedFromMnemonic validates a mnemonic sentence and derives its seed.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	m, err := ParseMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	return DeriveSeed(m, passphrase), nil
}
