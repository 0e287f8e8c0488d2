package wallet

import (
	"bytes"
	stded25519 "crypto/ed25519"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestDeriveKeypair_UsesFirst32Bytes(t *testing.T) {
	// RFC 8032 test 1 secret followed by unrelated bytes.
	seed, _ := hex.DecodeString("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60" +
		"ffeeddccbbaa99887766554433221100ffeeddccbbaa99887766554433221100")

	kp, err := DeriveKeypair(seed)
	if err != nil {
		t.Fatalf("DeriveKeypair() error: %v", err)
	}
	want := "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	if got := kp.PublicKey().Hex(); got != want {
		t.Errorf("public key = %s, want %s", got, want)
	}
}

func TestDeriveKeypair_Deterministic(t *testing.T) {
	m := Mnemonic(strings.Fields(seedVectors[1].mnemonic))
	seed := DeriveSeed(m, "")

	kp1, err := DeriveKeypair(seed)
	if err != nil {
		t.Fatalf("DeriveKeypair() error: %v", err)
	}
	kp2, err := DeriveKeypair(seed)
	if err != nil {
		t.Fatalf("DeriveKeypair() error: %v", err)
	}
	if !bytes.Equal(kp1.Bytes(), kp2.Bytes()) {
		t.Error("same seed should produce identical keypairs")
	}
}

func TestDeriveKeypair_InvalidSeedLength(t *testing.T) {
	for _, n := range []int{0, 1, 31} {
		_, err := DeriveKeypair(make([]byte, n))
		if !errors.Is(err, ErrInvalidSeedLength) {
			t.Errorf("DeriveKeypair(%d bytes) err = %v, want ErrInvalidSeedLength", n, err)
		}
	}
	if _, err := DeriveKeypair(make([]byte, 32)); err != nil {
		t.Errorf("32-byte seed should be accepted: %v", err)
	}
}

// Mnemonic "abandon x11 about" with an empty passphrase: the seed is the
// published BIP-39 value and the keypair must agree with crypto/ed25519.
func TestDeriveKeypair_EndToEnd(t *testing.T) {
	m, err := ParseMnemonic(seedVectors[0].mnemonic)
	if err != nil {
		t.Fatalf("ParseMnemonic() error: %v", err)
	}
	seed := DeriveSeed(m, "")
	wantSeed := "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"
	if hex.EncodeToString(seed) != wantSeed {
		t.Fatalf("seed = %x, want %s", seed, wantSeed)
	}

	kp, err := DeriveKeypair(seed)
	if err != nil {
		t.Fatalf("DeriveKeypair() error: %v", err)
	}
	ref := stded25519.NewKeyFromSeed(seed[:32]).Public().(stded25519.PublicKey)
	pub := kp.PublicKey()
	if !bytes.Equal(pub[:], ref) {
		t.Errorf("public key = %x, want %x", pub[:], []byte(ref))
	}
}
