package service

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// MovementTracker validates a claim against the identity's movement
	// history and records it when accepted.
	MovementTracker interface {
		CheckAndRecord(identity string, lat, lng float64, now time.Time) error
		Size() int
	}

	// AttestationSigner signs attestation messages with the service keypair.
	AttestationSigner interface {
		Sign(msg []byte) []byte
		PublicKey() []byte
	}
)
