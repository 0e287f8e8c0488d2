package wallet

import "errors"

// Key derivation errors. All of them are terminal for the operation that
// produced them; derivation is deterministic, so retrying cannot succeed.
var (
	// ErrInvalidWordCount is returned for a mnemonic length other than
	// 12, 15, 18, 21 or 24 words.
	ErrInvalidWordCount = errors.New("invalid mnemonic word count")

	// ErrUnknownWord is returned when a mnemonic contains a word that is
	// not in the BIP-39 English word list.
	ErrUnknownWord = errors.New("unknown mnemonic word")

	// ErrChecksumMismatch is returned when the checksum bits encoded in a
	// mnemonic do not match the SHA-256 checksum of its entropy.
	ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")

	// ErrInvalidSeedLength is returned when a seed is too short to hold an
	// Ed25519 secret key.
	ErrInvalidSeedLength = errors.New("invalid seed length")
)
