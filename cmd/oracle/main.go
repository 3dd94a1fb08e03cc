package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/huntgrounds/presence-oracle-backend/internal/clock"
	"github.com/huntgrounds/presence-oracle-backend/internal/service"
	"github.com/huntgrounds/presence-oracle-backend/internal/signer"
	"github.com/huntgrounds/presence-oracle-backend/internal/tracker"
	"github.com/huntgrounds/presence-oracle-backend/internal/transport"
)

var config struct {
	Addr           string  `long:"addr" env:"ORACLE_ADDR" description:"listen addr" default:":8000"`
	AdminSecretKey string  `long:"admin-secret-key" env:"ADMIN_SECRET_KEY" description:"hex-encoded Ed25519 seed used to sign attestations"`
	MaxSpeedMPS    float64 `long:"max-speed" env:"ORACLE_MAX_SPEED_MPS" description:"velocity threshold in meters per second" default:"30"`
	ClaimRPS       int     `long:"claim-rps" env:"ORACLE_CLAIM_RPS" description:"rate limit for the hunt route, 0 disables" default:"50"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Local development keeps the signing secret in .env; absence is fine
	// in environments that inject it directly.
	_ = godotenv.Load()

	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	// A bad or missing key does not stop the process: the service starts,
	// serves health and metrics, and fails every attestation request with a
	// configuration error until an operator fixes the secret and restarts.
	var attSigner service.AttestationSigner
	pubKeyHex := ""
	sgn, err := signer.New(config.AdminSecretKey)
	if err != nil {
		logger.Error("signing key unavailable, attestation requests will fail", zap.Error(err))
	} else {
		attSigner = sgn
		pubKeyHex = sgn.PublicKeyHex()
		logger.Info("signing key loaded", zap.String("pubkey", pubKeyHex))
	}

	attestor := service.NewAttestor(tracker.New(config.MaxSpeedMPS), attSigner, logger)
	handler := transport.NewHuntHandler(attestor, clock.System{}, pubKeyHex, logger)

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(transport.Router(handler, config.ClaimRPS)),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting HTTP server",
		zap.String("addr", config.Addr),
		zap.Float64("max_speed_mps", config.MaxSpeedMPS))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to listen and serve", zap.Error(err))
	}
}
