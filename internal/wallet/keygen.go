package wallet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	klog "github.com/Klingon-tech/solkey/internal/log"
	"github.com/Klingon-tech/solkey/pkg/crypto"
)

// selfCheckMessage is signed and verified after every derivation.
var selfCheckMessage = []byte("solkey keypair self-check")

// KeyGenRequest describes a key generation.
type KeyGenRequest struct {
	WordCount  int
	Passphrase string
}

// KeyGenResult is the outcome of a successful key generation or recovery.
// The caller owns the keypair and should Zero it when done.
type KeyGenResult struct {
	Mnemonic Mnemonic
	Keypair  *crypto.Keypair
}

// Generator produces new mnemonics and keypairs. Entropy is read from the
// configured source, which defaults to crypto/rand.
type Generator struct {
	Entropy io.Reader
}

// NewGenerator creates a generator reading entropy from r.
// A nil r uses crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{Entropy: r}
}

// Generate runs the full derivation chain: entropy, mnemonic, seed, keypair.
// The mnemonic is decoded again and compared with the original entropy, and
// the keypair must sign and verify a test message before it is returned.
func (g *Generator) Generate(req KeyGenRequest) (*KeyGenResult, error) {
	entropy, err := NewEntropy(g.Entropy, req.WordCount)
	if err != nil {
		return nil, fmt.Errorf("generate entropy: %w", err)
	}
	defer zero(entropy)

	m, err := MnemonicFromEntropy(entropy)
	if err != nil {
		return nil, fmt.Errorf("encode mnemonic: %w", err)
	}

	decoded, err := EntropyFromMnemonic(m)
	if err != nil {
		return nil, fmt.Errorf("decode mnemonic: %w", err)
	}
	defer zero(decoded)
	if !bytes.Equal(decoded, entropy) {
		return nil, errors.New("mnemonic does not decode to its entropy")
	}

	return deriveFromMnemonic(m, req.Passphrase)
}

// Recover re-derives the keypair for an existing mnemonic sentence.
func Recover(sentence, passphrase string) (*KeyGenResult, error) {
	m, err := ParseMnemonic(sentence)
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	return deriveFromMnemonic(m, passphrase)
}

func deriveFromMnemonic(m Mnemonic, passphrase string) (*KeyGenResult, error) {
	done := klog.Benchmark("derive keypair")
	defer done()

	seed := DeriveSeed(m, passphrase)
	defer zero(seed)

	kp, err := DeriveKeypair(seed)
	if err != nil {
		return nil, fmt.Errorf("derive keypair: %w", err)
	}
	if err := CheckSigner(kp); err != nil {
		kp.Zero()
		return nil, err
	}

	klog.Wallet.Debug().
		Int("words", len(m)).
		Bool("passphrase", passphrase != "").
		Str("pubkey", kp.PublicKey().String()).
		Msg("keypair derived")

	return &KeyGenResult{Mnemonic: m, Keypair: kp}, nil
}

// CheckSigner signs a test message and verifies it with the public key.
// It fails when the signer does not hold the private half of its public key.
func CheckSigner(s crypto.Signer) error {
	sig := s.Sign(selfCheckMessage)
	if !crypto.Verify(s.PublicKey(), selfCheckMessage, sig) {
		return errors.New("keypair failed sign/verify self-check")
	}
	return nil
}
