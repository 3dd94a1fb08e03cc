// Package service implements the attestation engine: it gates claims through
// the movement tracker, derives reward attributes from the claimed location
// and signs the result with the service keypair.
package service

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/huntgrounds/presence-oracle-backend/internal/metrics"
	"github.com/huntgrounds/presence-oracle-backend/internal/model"
)

// Attribute derivation is a pure function of the claimed coordinates rounded
// to 4 decimal places (~11 m). Hash bucketing keeps nearby-but-distinct
// coordinates uncorrelated, so grinding locations for a lucky digit buys
// nothing.
const (
	coordinatePrecision = 4

	rarityEpicBelow = 5
	rarityRareBelow = 25

	elementCount = 4
)

// Attestor turns accepted claims into signed attestations.
type Attestor struct {
	tracker MovementTracker
	signer  AttestationSigner
	logger  *zap.Logger
}

// NewAttestor builds the engine with its collaborators.
func NewAttestor(tracker MovementTracker, signer AttestationSigner, logger *zap.Logger) *Attestor {
	return &Attestor{
		tracker: tracker,
		signer:  signer,
		logger:  logger,
	}
}

// Attest runs the full pipeline for one claim: velocity check, attribute
// derivation, signing. A tracker rejection is returned as-is and produces no
// attributes and no signature.
func (a *Attestor) Attest(claim model.Claim) (model.Attestation, error) {
	if a.signer == nil {
		return model.Attestation{}, fmt.Errorf("%w: service started without a key", model.ErrSignerUnavailable)
	}

	if err := a.tracker.CheckAndRecord(claim.Identity, claim.Latitude, claim.Longitude, claim.ObservedAt); err != nil {
		a.logger.Info("claim rejected",
			zap.String("identity", claim.Identity),
			zap.Error(err))
		return model.Attestation{}, err
	}
	metrics.SetTrackedClaimants(a.tracker.Size())

	rarity, element, bucket := deriveAttributes(claim.Latitude, claim.Longitude)

	msg := buildMessage(claim.Identity, rarity, element)
	signStarted := time.Now()
	sig := a.signer.Sign(msg)
	metrics.ObserveSign(signStarted)

	a.logger.Info("attestation issued",
		zap.String("identity", claim.Identity),
		zap.Uint8("rarity", uint8(rarity)),
		zap.Uint8("element", uint8(element)),
		zap.Uint16("hash_bucket", bucket))

	return model.Attestation{
		Signature:  sig,
		Message:    msg,
		Rarity:     rarity,
		Element:    element,
		HashBucket: bucket,
		PublicKey:  a.signer.PublicKey(),
	}, nil
}

// deriveAttributes hashes the canonical location string and maps slices of
// the digest to the reward attributes.
func deriveAttributes(lat, lng float64) (model.Rarity, model.Element, uint16) {
	sum := sha256.Sum256([]byte(canonicalLocation(lat, lng)))

	bucket := binary.BigEndian.Uint16(sum[0:2]) % 100
	element := model.Element(binary.BigEndian.Uint16(sum[8:10])%elementCount + 1)

	return rarityForBucket(bucket), element, bucket
}

// canonicalLocation renders both coordinates with exactly 4 decimal places.
// Two claims inside the same ~11 m cell derive identical attributes.
func canonicalLocation(lat, lng float64) string {
	return fmt.Sprintf("%.*f,%.*f", coordinatePrecision, lat, coordinatePrecision, lng)
}

func rarityForBucket(bucket uint16) model.Rarity {
	switch {
	case bucket < rarityEpicBelow:
		return model.RarityEpic
	case bucket < rarityRareBelow:
		return model.RarityRare
	default:
		return model.RarityCommon
	}
}

// buildMessage lays out the signed payload: identity bytes, then one rarity
// byte, then one element byte. The on-chain verifier expects exactly this
// order; coordinates are deliberately excluded so a signature cannot be
// replayed for attributes it was not computed with.
func buildMessage(identity string, rarity model.Rarity, element model.Element) []byte {
	msg := make([]byte, 0, len(identity)+2)
	msg = append(msg, identity...)
	msg = append(msg, byte(rarity), byte(element))
	return msg
}
