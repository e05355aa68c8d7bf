package httpx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/roleadmin/pkg/httpx"
	"github.com/aussiebroadwan/roleadmin/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, scopes ...string) (string, jwtx.Verifier) {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(jwtx.NewEd25519JWK("k1", pub)))

	token, err := jwtx.Sign(jwtx.NewClaims("operator-1", scopes, "", nil, time.Minute, time.Now()), "k1", priv)
	require.NoError(t, err)
	return token, jwtx.NewKeySetVerifier(keys, jwtx.VerifyOptions{})
}

func TestAuthnMiddleware(t *testing.T) {
	token, verifier := signedToken(t, "admin:read")

	var subject string
	h := httpx.AuthnMiddleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject = httpx.SubjectFromContext(r.Context())
		claims, ok := httpx.ClaimsFromContext(r.Context())
		require.True(t, ok)
		require.True(t, claims.HasScope("admin:read"))
	}))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "operator-1", subject)
	})
}

func TestScopeMiddlewares(t *testing.T) {
	token, verifier := signedToken(t, "admin:read")

	serve := func(mw httpx.Middleware) int {
		h := httpx.Chain(okHandler, httpx.AuthnMiddleware(verifier), mw)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, serve(httpx.RequireAnyScope("admin:write", "admin:read")))
	require.Equal(t, http.StatusForbidden, serve(httpx.RequireAnyScope("admin:write")))
}
