package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/roleadmin/pkg/jwtx"
)

// verificationKeys holds the trusted signing keys and the loop that keeps
// them current.
type verificationKeys struct {
	keys      *jwtx.KeySet
	verifier  *jwtx.KeySetVerifier
	refresher *jwtx.Refresher
}

// initVerificationKeys loads the identity provider's JWKS once and fails
// startup when it cannot. Later reloads run in the background when a
// refresh interval is configured.
func initVerificationKeys(ctx context.Context, cfg Config, logger *slog.Logger) (*verificationKeys, error) {
	src := jwtx.FileSource(cfg.JWKSFile)
	origin := cfg.JWKSFile
	if cfg.JWKSURL != "" {
		src = jwtx.URLSource(cfg.JWKSURL)
		origin = cfg.JWKSURL
	}

	keys := jwtx.NewKeySet()
	refresher := jwtx.NewRefresher(keys, src, cfg.JWKSRefresh, logger)
	if err := refresher.Load(ctx); err != nil {
		return nil, fmt.Errorf("load jwks from %s: %w", origin, err)
	}
	logger.Info("verification keys loaded", "source", origin, "keys", keys.Len())

	return &verificationKeys{
		keys: keys,
		verifier: jwtx.NewKeySetVerifier(keys, jwtx.VerifyOptions{
			Issuer:   cfg.Issuer,
			Audience: cfg.Audience,
			Leeway:   cfg.TokenLeeway,
		}),
		refresher: refresher,
	}, nil
}

// start is a no-op when JWKS reloading is disabled.
func (k *verificationKeys) start() { k.refresher.Start() }

func (k *verificationKeys) stop() { k.refresher.Stop() }
