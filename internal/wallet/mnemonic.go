// Package wallet implements deterministic key generation from BIP-39
// mnemonics: entropy, the mnemonic codec, seed stretching, Ed25519 keypair
// derivation and the on-disk keypair file.
package wallet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/unicode/norm"
)

// wordIndex maps each English word to its 11-bit index.
var wordIndex = func() map[string]int {
	m := make(map[string]int, len(wordlists.English))
	for i, w := range wordlists.English {
		m[w] = i
	}
	return m
}()

// Mnemonic is an ordered sequence of BIP-39 English words encoding entropy
// plus its checksum.
type Mnemonic []string

// Sentence returns the words joined by single spaces.
func (m Mnemonic) Sentence() string {
	return strings.Join(m, " ")
}

// String returns the mnemonic sentence.
func (m Mnemonic) String() string {
	return m.Sentence()
}

// GenerateMnemonic creates a new mnemonic of wordCount words, drawing its
// entropy from r (crypto/rand when r is nil).
func GenerateMnemonic(r io.Reader, wordCount int) (Mnemonic, error) {
	entropy, err := NewEntropy(r, wordCount)
	if err != nil {
		return nil, fmt.Errorf("generate entropy: %w", err)
	}
	defer zero(entropy)

	m, err := MnemonicFromEntropy(entropy)
	if err != nil {
		return nil, fmt.Errorf("generate mnemonic: %w", err)
	}
	return m, nil
}

// MnemonicFromEntropy encodes entropy as a mnemonic: the leading
// len(entropy)*8/32 bits of SHA-256(entropy) are appended, and the result is
// split into 11-bit word indices.
func MnemonicFromEntropy(entropy []byte) (Mnemonic, error) {
	sentence, err := bip39.NewMnemonic(entropy)
	if err != nil {
		if errors.Is(err, bip39.ErrEntropyLengthInvalid) {
			return nil, fmt.Errorf("%w: entropy of %d bits", ErrInvalidWordCount, len(entropy)*8)
		}
		return nil, err
	}
	return Mnemonic(strings.Split(sentence, " ")), nil
}

// EntropyFromMnemonic decodes a mnemonic back to its entropy, verifying the
// word count, every word and the embedded checksum.
func EntropyFromMnemonic(words []string) ([]byte, error) {
	if !IsValidWordCount(len(words)) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWordCount, len(words))
	}
	for i, w := range words {
		if _, ok := wordIndex[w]; !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownWord, w, i+1)
		}
	}

	entropy, err := bip39.EntropyFromMnemonic(strings.Join(words, " "))
	if err != nil {
		if errors.Is(err, bip39.ErrChecksumIncorrect) {
			return nil, ErrChecksumMismatch
		}
		return nil, fmt.Errorf("decode mnemonic: %w", err)
	}
	return entropy, nil
}

// ParseMnemonic normalizes a user-supplied sentence (NFKD, lower case,
// whitespace collapsed) and validates it.
func ParseMnemonic(sentence string) (Mnemonic, error) {
	words := strings.Fields(strings.ToLower(norm.NFKD.String(sentence)))
	entropy, err := EntropyFromMnemonic(words)
	if err != nil {
		return nil, err
	}
	zero(entropy)
	return Mnemonic(words), nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(sentence string) bool {
	_, err := ParseMnemonic(sentence)
	return err == nil
}
