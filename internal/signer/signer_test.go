package signer

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/huntgrounds/presence-oracle-backend/internal/model"
)

const testSeedHex = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"

func TestNewRejectsBadSecrets(t *testing.T) {
	tests := []struct {
		name    string
		seedHex string
	}{
		{name: "empty", seedHex: ""},
		{name: "not hex", seedHex: "zz61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"},
		{name: "too short", seedHex: "9d61b19deffd5a60"},
		{name: "too long", seedHex: testSeedHex + "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.seedHex)
			if s != nil {
				t.Fatalf("New() returned a signer for a bad secret")
			}
			if !errors.Is(err, model.ErrSignerUnavailable) {
				t.Fatalf("New() error = %v, want ErrSignerUnavailable", err)
			}
		})
	}
}

func TestSignVerifiesAgainstPublicKey(t *testing.T) {
	s, err := New(testSeedHex)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	msg := []byte("0xabc123")
	sig := s.Sign(msg)
	if len(sig) != ed25519.SignatureSize {
		t.Fatalf("Sign() produced %d bytes, want %d", len(sig), ed25519.SignatureSize)
	}
	if !ed25519.Verify(s.PublicKey(), msg, sig) {
		t.Fatalf("signature did not verify against the service public key")
	}
	if ed25519.Verify(s.PublicKey(), []byte("0xabc124"), sig) {
		t.Fatalf("signature verified against a different message")
	}
}

func TestPublicKeyHex(t *testing.T) {
	s, err := New(testSeedHex)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	pkHex := s.PublicKeyHex()
	if len(pkHex) != ed25519.PublicKeySize*2 {
		t.Fatalf("PublicKeyHex() length = %d, want %d", len(pkHex), ed25519.PublicKeySize*2)
	}
	if pkHex != strings.ToLower(pkHex) {
		t.Fatalf("PublicKeyHex() not lower-case: %s", pkHex)
	}

	raw, err := hex.DecodeString(pkHex)
	if err != nil {
		t.Fatalf("PublicKeyHex() not hex: %v", err)
	}
	pub := s.PublicKey()
	if string(raw) != string(pub) {
		t.Fatalf("PublicKeyHex() does not match PublicKey()")
	}

	// The accessor must hand out a copy, not the internal slice.
	pub[0] ^= 0xff
	if string(s.PublicKey()) == string(pub) {
		t.Fatalf("PublicKey() exposed internal state")
	}
}
