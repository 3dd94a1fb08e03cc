package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/huntgrounds/presence-oracle-backend/internal/model"
)

var (
	claimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "presence_oracle",
		Subsystem: "attestor",
		Name:      "claims_total",
		Help:      "Count of processed claims by outcome.",
	}, []string{"outcome"})

	claimDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "presence_oracle",
		Subsystem: "attestor",
		Name:      "claim_duration_seconds",
		Help:      "Duration of claim processing.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})

	signDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "presence_oracle",
		Subsystem: "attestor",
		Name:      "sign_duration_seconds",
		Help:      "Duration of the Ed25519 signing step.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	trackedClaimants = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "presence_oracle",
		Subsystem: "tracker",
		Name:      "tracked_claimants",
		Help:      "Number of identities with a recorded position.",
	})
)

// ObserveClaim records one processed claim, classified by its rejection class.
func ObserveClaim(err error, started time.Time) {
	outcome := Outcome(err)
	claimsTotal.WithLabelValues(outcome).Inc()
	claimDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObserveSign records the duration of one signing operation.
func ObserveSign(started time.Time) {
	signDuration.Observe(time.Since(started).Seconds())
}

// SetTrackedClaimants updates the tracked-identity gauge.
func SetTrackedClaimants(n int) {
	trackedClaimants.Set(float64(n))
}

// Outcome maps a claim-processing error to its metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "issued"
	case errors.Is(err, model.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, model.ErrImplausibleVelocity):
		return "implausible_velocity"
	case errors.Is(err, model.ErrStaleClaim):
		return "stale_claim"
	case errors.Is(err, model.ErrSignerUnavailable):
		return "signer_unavailable"
	default:
		return "error"
	}
}
