// Package transport exposes the HTTP boundary of the attestation service.
package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/huntgrounds/presence-oracle-backend/internal/clock"
	"github.com/huntgrounds/presence-oracle-backend/internal/metrics"
	"github.com/huntgrounds/presence-oracle-backend/internal/model"
)

// AttestationService is the engine behind the hunt endpoint.
type AttestationService interface {
	Attest(claim model.Claim) (model.Attestation, error)
}

// HuntHandler serves attestation claims over JSON HTTP.
type HuntHandler struct {
	service   AttestationService
	clk       clock.Clock
	pubKeyHex string
	logger    *zap.Logger
}

// NewHuntHandler builds the handler. pubKeyHex is exposed read-only on the
// pubkey route so operators can cross-check the on-chain verifier key.
func NewHuntHandler(service AttestationService, clk clock.Clock, pubKeyHex string, logger *zap.Logger) *HuntHandler {
	return &HuntHandler{
		service:   service,
		clk:       clk,
		pubKeyHex: pubKeyHex,
		logger:    logger,
	}
}

// Router assembles the service routes. claimRPS throttles the hunt route with
// a leaky bucket; non-positive values disable throttling.
func Router(h *HuntHandler, claimRPS int) http.Handler {
	r := chi.NewRouter()

	hunt := http.Handler(http.HandlerFunc(h.Hunt))
	if claimRPS > 0 {
		hunt = throttle(ratelimit.New(claimRPS))(hunt)
	}
	r.Method(http.MethodPost, "/api/hunt", hunt)
	r.Get("/api/pubkey", h.PublicKey)
	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// maxBodyBytes bounds claim bodies; a claim is three short fields.
const maxBodyBytes = 4 << 10

type huntRequest struct {
	Address *string  `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

type huntResponse struct {
	Signature   byteInts `json:"signature"`
	Msg         byteInts `json:"msg"`
	Rarity      uint8    `json:"rarity"`
	Element     uint8    `json:"element"`
	HashBucket  uint16   `json:"hash_bucket"`
	DebugPubkey string   `json:"debug_pubkey"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Hunt handles POST /api/hunt.
func (h *HuntHandler) Hunt(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	req, err := decodeHuntRequest(r)
	if err != nil {
		metrics.ObserveClaim(err, started)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	claim := model.Claim{
		Identity:   *req.Address,
		Latitude:   *req.Lat,
		Longitude:  *req.Lng,
		ObservedAt: h.clk.Now(),
	}

	att, err := h.service.Attest(claim)
	metrics.ObserveClaim(err, started)
	if err != nil {
		h.writeAttestError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, huntResponse{
		Signature:   att.Signature,
		Msg:         att.Message,
		Rarity:      uint8(att.Rarity),
		Element:     uint8(att.Element),
		HashBucket:  att.HashBucket,
		DebugPubkey: h.pubKeyHex,
	})
}

// PublicKey handles GET /api/pubkey.
func (h *HuntHandler) PublicKey(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"pubkey": h.pubKeyHex})
}

// Health handles GET /healthz.
func (h *HuntHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeHuntRequest(r *http.Request) (huntRequest, error) {
	var req huntRequest

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return req, fmt.Errorf("%w: trailing data after claim object", model.ErrInvalidInput)
	}

	switch {
	case req.Address == nil:
		return req, fmt.Errorf("%w: missing field address", model.ErrInvalidInput)
	case req.Lat == nil:
		return req, fmt.Errorf("%w: missing field lat", model.ErrInvalidInput)
	case req.Lng == nil:
		return req, fmt.Errorf("%w: missing field lng", model.ErrInvalidInput)
	}
	return req, nil
}

func (h *HuntHandler) writeAttestError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrImplausibleVelocity),
		errors.Is(err, model.ErrStaleClaim):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrSignerUnavailable):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: model.ErrSignerUnavailable.Error()})
	default:
		h.logger.Error("attestation failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func throttle(rl ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rl.Take()
			next.ServeHTTP(w, r)
		})
	}
}

// byteInts marshals a byte slice as a JSON array of integers rather than
// base64, matching what the contract-calling client forwards verbatim.
type byteInts []byte

func (b byteInts) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("[]"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Itoa(int(v)))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
