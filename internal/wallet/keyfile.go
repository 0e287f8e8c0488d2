package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Klingon-tech/solkey/pkg/crypto"
)

var (
	// ErrPersistence wraps every failure to write a keypair file.
	ErrPersistence = errors.New("keypair persistence failed")

	// ErrKeyfileExists is returned when the output file already exists and
	// overwriting was not requested.
	ErrKeyfileExists = errors.New("keypair file already exists")
)

// Keypair files hold the 64 keypair bytes (secret seed then public key) as
// a JSON array of integers, the layout used by the ledger's own CLI tools.

// WriteKeypairFile persists kp to path with 0600 permissions. The data is
// written to a temporary file in the same directory and moved into place,
// so a failed write never leaves a partial keypair behind.
func WriteKeypairFile(path string, kp *crypto.Keypair, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %w: %s", ErrPersistence, ErrKeyfileExists, path)
		}
	}

	raw := kp.Bytes()
	defer zero(raw)
	ints := make([]int, len(raw))
	for i, b := range raw {
		ints[i] = int(b)
	}
	data, err := json.Marshal(ints)
	if err != nil {
		return fmt.Errorf("%w: marshal keypair: %v", ErrPersistence, err)
	}
	defer zero(data)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: create directory: %w", ErrPersistence, err)
	}

	tmp, err := os.CreateTemp(dir, ".keypair-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrPersistence, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if err := tmp.Chmod(0600); err != nil {
		cleanup()
		return fmt.Errorf("%w: chmod: %w", ErrPersistence, err)
	}
	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("%w: write: %w", ErrPersistence, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("%w: sync: %w", ErrPersistence, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: close: %w", ErrPersistence, err)
	}
	return commitKeyfile(tmpPath, path, overwrite)
}

// commitKeyfile moves the finished temp file to path. Without overwrite it
// hard-links instead of renaming, which fails if path appeared after the
// initial existence check.
func commitKeyfile(tmpPath, path string, overwrite bool) error {
	if overwrite {
		if err := os.Rename(tmpPath, path); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("%w: rename: %w", ErrPersistence, err)
		}
		return nil
	}

	defer os.Remove(tmpPath)
	if err := os.Link(tmpPath, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %w: %s", ErrPersistence, ErrKeyfileExists, path)
		}
		return fmt.Errorf("%w: link: %w", ErrPersistence, err)
	}
	return nil
}

// ReadKeypairFile loads a keypair written by WriteKeypairFile.
func ReadKeypairFile(path string) (*crypto.Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keypair file: %w", err)
	}
	defer zero(data)

	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return nil, fmt.Errorf("parse keypair file: %w", err)
	}
	if len(ints) != crypto.KeypairSize {
		return nil, fmt.Errorf("%w: keypair file holds %d bytes, want %d", crypto.ErrInvalidKeypair, len(ints), crypto.KeypairSize)
	}

	raw := make([]byte, len(ints))
	defer zero(raw)
	for i, v := range ints {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: byte %d out of range: %d", crypto.ErrInvalidKeypair, i, v)
		}
		raw[i] = byte(v)
	}
	for i := range ints {
		ints[i] = 0
	}

	return crypto.KeypairFromBytes(raw)
}
