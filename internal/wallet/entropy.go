package wallet

import (
	"crypto/rand"
	"fmt"
	"io"
)

// DefaultWordCount is the mnemonic length used when none is requested.
const DefaultWordCount = 12

// ValidWordCounts lists the supported mnemonic lengths.
var ValidWordCounts = []int{12, 15, 18, 21, 24}

// IsValidWordCount reports whether n is a supported mnemonic length.
func IsValidWordCount(n int) bool {
	for _, c := range ValidWordCounts {
		if n == c {
			return true
		}
	}
	return false
}

// EntropyBits returns the number of entropy bits carried by a mnemonic of
// wordCount words. Each word encodes 11 bits, wordCount/3 of which in total
// are checksum.
func EntropyBits(wordCount int) (int, error) {
	if !IsValidWordCount(wordCount) {
		return 0, fmt.Errorf("%w: %d (valid: 12, 15, 18, 21, 24)", ErrInvalidWordCount, wordCount)
	}
	return wordCount*11 - wordCount/3, nil
}

// ChecksumBits returns the number of checksum bits in a mnemonic of
// wordCount words (entropy bits / 32).
func ChecksumBits(wordCount int) (int, error) {
	if !IsValidWordCount(wordCount) {
		return 0, fmt.Errorf("%w: %d (valid: 12, 15, 18, 21, 24)", ErrInvalidWordCount, wordCount)
	}
	return wordCount / 3, nil
}

// NewEntropy reads fresh entropy for a mnemonic of wordCount words from r.
// A nil r uses crypto/rand.
func NewEntropy(r io.Reader, wordCount int) ([]byte, error) {
	bits, err := EntropyBits(wordCount)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = rand.Reader
	}
	entropy := make([]byte, bits/8)
	if _, err := io.ReadFull(r, entropy); err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	return entropy, nil
}

// zero overwrites secret material in place.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
