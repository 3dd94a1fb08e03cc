// Package signer holds the service Ed25519 keypair and signs attestations.
package signer

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/huntgrounds/presence-oracle-backend/internal/model"
)

// Signer signs attestation messages with a long-lived service keypair loaded
// once at startup. The private key never leaves the process; only the public
// counterpart is exposed, for verifier parity checks.
type Signer struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// New parses a hex-encoded 32-byte Ed25519 seed. An empty or malformed secret
// is a configuration error: the service must not start in signing mode.
func New(seedHex string) (*Signer, error) {
	if seedHex == "" {
		return nil, fmt.Errorf("%w: empty secret", model.ErrSignerUnavailable)
	}
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("%w: decode secret: %v", model.ErrSignerUnavailable, err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: secret is %d bytes, want %d", model.ErrSignerUnavailable, len(seed), ed25519.SeedSize)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &Signer{
		priv: priv,
		pub:  priv.Public().(ed25519.PublicKey),
	}, nil
}

// Sign returns the Ed25519 signature over msg.
func (s *Signer) Sign(msg []byte) []byte {
	return ed25519.Sign(s.priv, msg)
}

// PublicKey returns the raw 32-byte public key.
func (s *Signer) PublicKey() []byte {
	out := make([]byte, len(s.pub))
	copy(out, s.pub)
	return out
}

// PublicKeyHex returns the public key in the hex form the on-chain verifier
// is provisioned with.
func (s *Signer) PublicKeyHex() string {
	return hex.EncodeToString(s.pub)
}
