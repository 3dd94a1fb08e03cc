// Package tracker keeps per-identity movement history and rejects claims
// whose implied travel speed is implausible.
package tracker

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/huntgrounds/presence-oracle-backend/internal/geo"
	"github.com/huntgrounds/presence-oracle-backend/internal/model"
)

// DefaultMaxSpeedMPS is fast-vehicle speed, clearly above anything a player
// on foot can sustain.
const DefaultMaxSpeedMPS = 30.0

// Tracker is the claimant table plus the velocity check. The whole table is
// guarded by one mutex so the check-then-record step is atomic with respect
// to concurrent claims for the same identity. Entries live for the process
// lifetime; there is no decay of the reference point.
type Tracker struct {
	maxSpeedMPS float64

	mu      sync.Mutex
	records map[string]model.ClaimantRecord
}

// New builds a Tracker with the given speed threshold in meters per second.
// Non-positive thresholds fall back to DefaultMaxSpeedMPS.
func New(maxSpeedMPS float64) *Tracker {
	if maxSpeedMPS <= 0 {
		maxSpeedMPS = DefaultMaxSpeedMPS
	}
	return &Tracker{
		maxSpeedMPS: maxSpeedMPS,
		records:     make(map[string]model.ClaimantRecord),
	}
}

// CheckAndRecord validates a claim against the identity's last accepted
// position and, on acceptance, replaces the stored record. The record is
// never mutated for a rejected claim, so retrying from a spoofed position
// cannot walk the reference point forward.
//
// A claim whose timestamp is not after the stored one is rejected as stale
// rather than accepted unchecked: with zero elapsed time a duplicate
// submission could otherwise relocate the reference point for free.
func (t *Tracker) CheckAndRecord(identity string, lat, lng float64, now time.Time) error {
	if err := validate(identity, lat, lng); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	last, seen := t.records[identity]
	if seen {
		elapsed := now.Sub(last.ObservedAt).Seconds()
		if elapsed <= 0 {
			return fmt.Errorf("%w: claim at %d not after last accepted claim at %d",
				model.ErrStaleClaim, now.UnixMilli(), last.ObservedAt.UnixMilli())
		}
		dist := geo.Distance(last.Latitude, last.Longitude, lat, lng)
		if speed := dist / elapsed; speed > t.maxSpeedMPS {
			return fmt.Errorf("%w: %.1f m/s over %.0f m exceeds %.1f m/s",
				model.ErrImplausibleVelocity, speed, dist, t.maxSpeedMPS)
		}
	}

	t.records[identity] = model.ClaimantRecord{
		Identity:   identity,
		Latitude:   lat,
		Longitude:  lng,
		ObservedAt: now,
	}
	return nil
}

// Size reports the number of tracked identities.
func (t *Tracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

func validate(identity string, lat, lng float64) error {
	if identity == "" {
		return fmt.Errorf("%w: empty identity", model.ErrInvalidInput)
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return fmt.Errorf("%w: non-finite coordinates", model.ErrInvalidInput)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of [-90, 90]", model.ErrInvalidInput, lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %v out of [-180, 180]", model.ErrInvalidInput, lng)
	}
	return nil
}
