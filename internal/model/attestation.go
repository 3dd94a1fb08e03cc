package model

import "time"

// Rarity classifies a reward by drop frequency.
type Rarity uint8

const (
	RarityCommon Rarity = 1
	RarityRare   Rarity = 2
	RarityEpic   Rarity = 3
)

// Element is the secondary reward category.
type Element uint8

const (
	ElementFire  Element = 1
	ElementWater Element = 2
	ElementEarth Element = 3
	ElementAir   Element = 4
)

// Claim is a single location report from a claimant. Not persisted.
type Claim struct {
	Identity   string
	Latitude   float64
	Longitude  float64
	ObservedAt time.Time
}

// ClaimantRecord holds the last accepted position for one identity.
// Updated only by accepted claims; a rejected claim never moves it.
type ClaimantRecord struct {
	Identity   string
	Latitude   float64
	Longitude  float64
	ObservedAt time.Time
}

// Attestation is the signed statement binding an identity to its derived
// reward attributes. Message carries the exact bytes that were signed; the
// caller must forward Message and Signature unchanged to the verifier.
type Attestation struct {
	Signature  []byte
	Message    []byte
	Rarity     Rarity
	Element    Element
	HashBucket uint16
	PublicKey  []byte
}
