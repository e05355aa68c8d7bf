package jwtx_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/roleadmin/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func writeJWKS(t *testing.T, path string, set jwtx.JWKS) {
	t.Helper()
	b, err := json.Marshal(set)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0600))
}

func TestJWKPublicKeyRejectsUnsupported(t *testing.T) {
	_, err := jwtx.JWK{Kty: "oct"}.PublicKey()
	require.Error(t, err)

	_, err = jwtx.JWK{Kty: "OKP", Crv: "X25519"}.PublicKey()
	require.Error(t, err)

	_, err = jwtx.JWK{Kty: "OKP", Crv: "Ed25519", X: "c2hvcnQ"}.PublicKey()
	require.Error(t, err)
}

func TestLoadJWKSFile(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jwks.json")
	writeJWKS(t, path, jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewEd25519JWK("k1", pub)}})

	set, err := jwtx.LoadJWKSFile(path)
	require.NoError(t, err)
	require.Len(t, set.Keys, 1)
	require.Equal(t, "k1", set.Keys[0].Kid)

	_, err = jwtx.LoadJWKSFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestFetchJWKS(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/jwks.json" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewEd25519JWK("remote", pub)}})
	}))
	t.Cleanup(srv.Close)

	set, err := jwtx.FetchJWKS(context.Background(), srv.Client(), srv.URL+"/.well-known/jwks.json")
	require.NoError(t, err)
	require.Equal(t, "remote", set.Keys[0].Kid)

	_, err = jwtx.FetchJWKS(context.Background(), srv.Client(), srv.URL+"/nope")
	require.Error(t, err)
}

func TestKeySetResetIsAtomic(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(jwtx.NewEd25519JWK("old", pub)))

	err = keys.Reset(jwtx.JWKS{Keys: []jwtx.JWK{
		jwtx.NewEd25519JWK("new", pub),
		{Kty: "bogus", Kid: "broken"},
	}})
	require.Error(t, err)

	_, err = keys.Get("old")
	require.NoError(t, err, "failed reset must keep the previous keys")
	_, err = keys.Get("new")
	require.ErrorIs(t, err, jwtx.ErrNoKey)
}

func TestRefresherPicksUpRotatedKeys(t *testing.T) {
	first, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	second, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jwks.json")
	writeJWKS(t, path, jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewEd25519JWK("first", first)}})

	keys := jwtx.NewKeySet()
	r := jwtx.NewRefresher(keys, jwtx.FileSource(path), 10*time.Millisecond, nil)
	require.NoError(t, r.Load(context.Background()))
	require.True(t, keys.IsReady())

	r.Start()
	t.Cleanup(r.Stop)

	writeJWKS(t, path, jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewEd25519JWK("second", second)}})

	require.Eventually(t, func() bool {
		_, err := keys.Get("second")
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRefresherStopWithoutStart(t *testing.T) {
	r := jwtx.NewRefresher(jwtx.NewKeySet(), jwtx.FileSource("unused.json"), time.Minute, nil)

	done := make(chan struct{})
	go func() {
		r.Stop()
		r.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked on a refresher that never started")
	}

	r.Start()
}

func TestRefresherStopTwiceAfterStart(t *testing.T) {
	r := jwtx.NewRefresher(jwtx.NewKeySet(), jwtx.FileSource("unused.json"), time.Hour, nil)
	r.Start()
	r.Start()

	require.NotPanics(t, func() {
		r.Stop()
		r.Stop()
	})
}

func TestRefresherWithoutIntervalNeverRuns(t *testing.T) {
	r := jwtx.NewRefresher(jwtx.NewKeySet(), jwtx.FileSource("unused.json"), 0, nil)

	require.NotPanics(t, r.Start)
	require.NotPanics(t, r.Stop)
}
