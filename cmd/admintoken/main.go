// Command admintoken manages a local signing key for the admin API and mints
// bearer tokens signed by it.
//
//	admintoken keygen -alg EdDSA -key admin.pem -jwks jwks.json
//	admintoken sign -key admin.pem -kid <kid> -sub operator -scope admin:write
//
// The JWKS written by keygen is what the admin service reads via JWKS_FILE.
// Set ADMIN_KEY_PASSPHRASE to seal the private key at rest.
package main

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/roleadmin/pkg/cryptox"
	"github.com/aussiebroadwan/roleadmin/pkg/jwtx"
	"github.com/aussiebroadwan/roleadmin/pkg/slogx"
)

const passphraseEnv = "ADMIN_KEY_PASSPHRASE"

var errUsage = errors.New("usage: admintoken <keygen|sign> [flags]")

func main() {
	logger := slogx.New(slogx.Config{
		Service: "admintoken",
		Env:     "dev",
		Format:  "text",
		Level:   os.Getenv("LOG_LEVEL"),
		Output:  os.Stderr,
	})

	if err := run(os.Args[1:], os.Getenv(passphraseEnv), os.Stdout, logger); err != nil {
		logger.Error("admintoken failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, passphrase string, stdout io.Writer, logger *slog.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "keygen":
		return runKeygen(args[1:], passphrase, logger)
	case "sign":
		return runSign(args[1:], passphrase, stdout, logger)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func runKeygen(args []string, passphrase string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	alg := fs.String("alg", string(cryptox.EdDSA), "signing algorithm: EdDSA, ES256 or RS256")
	bits := fs.Int("rsa-bits", 3072, "RSA key size, RS256 only")
	kid := fs.String("kid", "", "key id, random when empty")
	keyPath := fs.String("key", "admin-signing.pem", "private key output path")
	jwksPath := fs.String("jwks", "jwks.json", "JWKS output path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *kid == "" {
		id, err := cryptox.RandomString(12)
		if err != nil {
			return err
		}
		*kid = id
	}

	pemData, err := cryptox.GenerateSigningKey(cryptox.Algorithm(*alg), *bits)
	if err != nil {
		return err
	}
	key, err := cryptox.ParseSigningKey(pemData)
	if err != nil {
		return err
	}
	jwk, err := publicJWK(*kid, key)
	if err != nil {
		return err
	}

	if passphrase != "" {
		if pemData, err = cryptox.SealSigningKey(pemData, []byte(passphrase)); err != nil {
			return err
		}
	}
	if err := os.WriteFile(*keyPath, pemData, 0o600); err != nil {
		return fmt.Errorf("write key: %w", err)
	}

	jwks, err := json.MarshalIndent(jwtx.JWKS{Keys: []jwtx.JWK{jwk}}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(*jwksPath, append(jwks, '\n'), 0o644); err != nil {
		return fmt.Errorf("write jwks: %w", err)
	}

	logger.Info("signing key created",
		"alg", *alg,
		"kid", *kid,
		"key", *keyPath,
		"jwks", *jwksPath,
		"sealed", passphrase != "",
	)
	return nil
}

func runSign(args []string, passphrase string, stdout io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	keyPath := fs.String("key", "admin-signing.pem", "private key path")
	kid := fs.String("kid", "", "key id, must match the JWKS entry")
	sub := fs.String("sub", "operator", "token subject")
	username := fs.String("username", "", "operator username claim")
	scope := fs.String("scope", "admin:read,admin:write", "comma separated scopes")
	iss := fs.String("iss", "", "issuer")
	aud := fs.String("aud", "", "comma separated audiences")
	ttl := fs.Duration("ttl", time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *kid == "" {
		return errors.New("sign: -kid is required")
	}
	if *ttl <= 0 {
		return errors.New("sign: -ttl must be positive")
	}

	raw, err := os.ReadFile(*keyPath)
	if err != nil {
		return fmt.Errorf("read key: %w", err)
	}
	if raw, err = cryptox.OpenSigningKey(raw, []byte(passphrase)); err != nil {
		return err
	}
	key, err := cryptox.ParseSigningKey(raw)
	if err != nil {
		return err
	}

	claims := jwtx.NewClaims(*sub, splitList(*scope), *iss, splitList(*aud), *ttl, time.Now())
	claims.Username = *username

	token, err := jwtx.Sign(claims, *kid, key)
	if err != nil {
		return err
	}

	logger.Debug("token signed", "kid", *kid, "sub", *sub, "scopes", claims.Scopes, "expires_at", claims.ExpiresAt.Time)
	_, err = fmt.Fprintln(stdout, token)
	return err
}

func publicJWK(kid string, key crypto.Signer) (jwtx.JWK, error) {
	switch pub := key.Public().(type) {
	case ed25519.PublicKey:
		return jwtx.NewEd25519JWK(kid, pub), nil
	case *ecdsa.PublicKey:
		return jwtx.NewES256JWK(kid, pub), nil
	case *rsa.PublicKey:
		return jwtx.NewRSAJWK(kid, pub), nil
	default:
		return jwtx.JWK{}, fmt.Errorf("unsupported public key %T", pub)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
