package jwtx_test

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/aussiebroadwan/roleadmin/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "https://auth.example.test"

var exampleAudience = []string{"roleadmin"}

func newVerifier(t *testing.T, jwks ...jwtx.JWK) *jwtx.KeySetVerifier {
	t.Helper()

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.Reset(jwtx.JWKS{Keys: jwks}))
	return jwtx.NewKeySetVerifier(keys, jwtx.VerifyOptions{
		Issuer:   exampleIssuer,
		Audience: exampleAudience,
	})
}

func freshClaims() jwtx.Claims {
	c := jwtx.NewClaims("user-1", []string{"admin:read"}, exampleIssuer, exampleAudience, 5*time.Minute, time.Now().UTC())
	c.Username = "operator"
	return c
}

func TestSignAndVerifyEachAlgorithm(t *testing.T) {
	t.Parallel()

	edPub, edPriv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	ecPriv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	rsaPriv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	v := newVerifier(t,
		jwtx.NewEd25519JWK("ed", edPub),
		jwtx.NewES256JWK("ec", &ecPriv.PublicKey),
		jwtx.NewRSAJWK("rsa", &rsaPriv.PublicKey),
	)

	tests := []struct {
		name string
		kid  string
		key  any
	}{
		{"EdDSA", "ed", edPriv},
		{"ES256", "ec", ecPriv},
		{"RS256", "rsa", rsaPriv},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := freshClaims()
			token, err := jwtx.Sign(claims, tt.kid, tt.key)
			require.NoError(t, err)

			got, err := v.Verify(token)
			require.NoError(t, err)
			require.Equal(t, "user-1", got.Subject)
			require.Equal(t, "operator", got.Username)
			require.True(t, got.HasScope("admin:read"))
			require.False(t, got.HasScope("admin:write"))
		})
	}
}

func TestVerifyRejects(t *testing.T) {
	t.Parallel()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	ecPriv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	v := newVerifier(t, jwtx.NewEd25519JWK("ed", pub))

	t.Run("wrong issuer", func(t *testing.T) {
		c := freshClaims()
		c.Issuer = "https://evil.example.test"
		token, err := jwtx.Sign(c, "ed", priv)
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		c := freshClaims()
		c.Audience = []string{"someone-else"}
		token, err := jwtx.Sign(c, "ed", priv)
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("expired", func(t *testing.T) {
		c := jwtx.NewClaims("user-1", nil, exampleIssuer, exampleAudience, time.Minute, time.Now().Add(-time.Hour))
		token, err := jwtx.Sign(c, "ed", priv)
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("unknown kid", func(t *testing.T) {
		token, err := jwtx.Sign(freshClaims(), "missing", priv)
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrNoKey)
	})

	t.Run("key type does not match algorithm", func(t *testing.T) {
		token, err := jwtx.Sign(freshClaims(), "ed", ecPriv)
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrKeyMismatch)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not.a.token")
		require.Error(t, err)
	})
}

func TestVerifyLeeway(t *testing.T) {
	t.Parallel()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(jwtx.NewEd25519JWK("ed", pub)))

	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := jwtx.NewClaims("user-1", nil, "", nil, time.Minute, issued)
	token, err := jwtx.Sign(c, "ed", priv)
	require.NoError(t, err)

	at := func(ts time.Time) func() time.Time { return func() time.Time { return ts } }

	strict := jwtx.NewKeySetVerifier(keys, jwtx.VerifyOptions{Now: at(issued.Add(90 * time.Second))})
	_, err = strict.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)

	lenient := jwtx.NewKeySetVerifier(keys, jwtx.VerifyOptions{Now: at(issued.Add(90 * time.Second)), Leeway: time.Minute})
	_, err = lenient.Verify(token)
	require.NoError(t, err)
}
