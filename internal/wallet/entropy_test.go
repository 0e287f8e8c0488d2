package wallet

import (
	"bytes"
	"errors"
	"testing"
)

func TestEntropyBits(t *testing.T) {
	tests := []struct {
		words    int
		bits     int
		checksum int
	}{
		{12, 128, 4},
		{15, 160, 5},
		{18, 192, 6},
		{21, 224, 7},
		{24, 256, 8},
	}

	for _, tt := range tests {
		bits, err := EntropyBits(tt.words)
		if err != nil {
			t.Fatalf("EntropyBits(%d) error: %v", tt.words, err)
		}
		if bits != tt.bits {
			t.Errorf("EntropyBits(%d) = %d, want %d", tt.words, bits, tt.bits)
		}
		cs, err := ChecksumBits(tt.words)
		if err != nil {
			t.Fatalf("ChecksumBits(%d) error: %v", tt.words, err)
		}
		if cs != tt.checksum {
			t.Errorf("ChecksumBits(%d) = %d, want %d", tt.words, cs, tt.checksum)
		}
		if bits/32 != cs {
			t.Errorf("checksum bits %d should equal entropy bits / 32 (%d)", cs, bits/32)
		}
	}
}

func TestEntropyBits_Invalid(t *testing.T) {
	for _, n := range []int{-12, 0, 1, 11, 13, 16, 23, 25, 48} {
		if _, err := EntropyBits(n); !errors.Is(err, ErrInvalidWordCount) {
			t.Errorf("EntropyBits(%d) err = %v, want ErrInvalidWordCount", n, err)
		}
		if _, err := ChecksumBits(n); !errors.Is(err, ErrInvalidWordCount) {
			t.Errorf("ChecksumBits(%d) err = %v, want ErrInvalidWordCount", n, err)
		}
	}
}

func TestNewEntropy_Length(t *testing.T) {
	for _, n := range ValidWordCounts {
		entropy, err := NewEntropy(nil, n)
		if err != nil {
			t.Fatalf("NewEntropy(%d) error: %v", n, err)
		}
		bits, _ := EntropyBits(n)
		if len(entropy)*8 != bits {
			t.Errorf("NewEntropy(%d) returned %d bits, want %d", n, len(entropy)*8, bits)
		}
	}
}

func TestNewEntropy_InjectedSource(t *testing.T) {
	src := bytes.NewReader(bytes.Repeat([]byte{0xA5}, 64))
	entropy, err := NewEntropy(src, 24)
	if err != nil {
		t.Fatalf("NewEntropy() error: %v", err)
	}
	if !bytes.Equal(entropy, bytes.Repeat([]byte{0xA5}, 32)) {
		t.Errorf("entropy = %x, want 32 bytes of a5", entropy)
	}
}

func TestNewEntropy_ShortSource(t *testing.T) {
	_, err := NewEntropy(bytes.NewReader(make([]byte, 8)), 12)
	if err == nil {
		t.Error("expected error when the entropy source runs dry")
	}
}
