package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/roleadmin/pkg/jwtx"
)

func TestKeygenAndSign(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, alg := range []string{"EdDSA", "ES256", "RS256"} {
		t.Run(alg, func(t *testing.T) {
			dir := t.TempDir()
			keyPath := filepath.Join(dir, "admin.pem")
			jwksPath := filepath.Join(dir, "jwks.json")

			err := run([]string{"keygen", "-alg", alg, "-rsa-bits", "2048", "-kid", "k1", "-key", keyPath, "-jwks", jwksPath}, "", io.Discard, logger)
			require.NoError(t, err)

			info, err := os.Stat(keyPath)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

			var out bytes.Buffer
			err = run([]string{"sign", "-key", keyPath, "-kid", "k1", "-sub", "ops", "-scope", "admin:read", "-iss", "local", "-aud", "admin"}, "", &out, logger)
			require.NoError(t, err)

			jwks, err := jwtx.LoadJWKSFile(jwksPath)
			require.NoError(t, err)
			keys := jwtx.NewKeySet()
			require.NoError(t, keys.Reset(jwks))

			verifier := jwtx.NewKeySetVerifier(keys, jwtx.VerifyOptions{Issuer: "local", Audience: []string{"admin"}})
			claims, err := verifier.Verify(strings.TrimSpace(out.String()))
			require.NoError(t, err)
			require.Equal(t, "ops", claims.Subject)
			require.True(t, claims.HasScope("admin:read"))
			require.False(t, claims.HasScope("admin:write"))
		})
	}
}

func TestSealedKeyNeedsPassphrase(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "admin.pem")

	err := run([]string{"keygen", "-kid", "k1", "-key", keyPath, "-jwks", filepath.Join(dir, "jwks.json")}, "secret", io.Discard, logger)
	require.NoError(t, err)

	raw, err := os.ReadFile(keyPath)
	require.NoError(t, err)
	require.Contains(t, string(raw), "SEALED PRIVATE KEY")

	err = run([]string{"sign", "-key", keyPath, "-kid", "k1"}, "", io.Discard, logger)
	require.Error(t, err)

	var out bytes.Buffer
	err = run([]string{"sign", "-key", keyPath, "-kid", "k1"}, "secret", &out, logger)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out.String(), "."))
}

func TestRunUsage(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.ErrorIs(t, run(nil, "", io.Discard, logger), errUsage)
	require.ErrorIs(t, run([]string{"rotate"}, "", io.Discard, logger), errUsage)
	require.Error(t, run([]string{"sign", "-key", "missing.pem"}, "", io.Discard, logger))
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	require.Nil(t, splitList(""))
}
