package app

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/roleadmin/pkg/adminsdk"
	"github.com/aussiebroadwan/roleadmin/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) (Config, ed25519.PrivateKey) {
	t.Helper()
	dir := t.TempDir()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	jwks, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{jwtx.NewEd25519JWK("k1", pub)}})
	require.NoError(t, err)
	jwksPath := filepath.Join(dir, "jwks.json")
	require.NoError(t, os.WriteFile(jwksPath, jwks, 0o600))

	return Config{
		DatabaseFile:        filepath.Join(dir, "admin.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		Issuer:              "https://id.example.test",
		JWKSFile:            jwksPath,
		Locale:              "zh-CN",
		Resources:           []string{"posts", "comments"},
		ProtectedRoles:      []string{"admin"},
		PasswordMinLength:   8,
		ReadRateLimit:       100,
		WriteRateLimit:      100,
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                0,
		ShutdownGracePeriod: time.Second,
	}, priv
}

func TestNewSeedsAndServes(t *testing.T) {
	cfg, priv := testConfig(t)

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, app.Shutdown()) })

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)

	token, err := jwtx.Sign(jwtx.NewClaims("operator", []string{"admin:write"}, cfg.Issuer, nil, time.Minute, time.Now()), "k1", priv)
	require.NoError(t, err)
	client := adminsdk.NewClient(srv.URL, token)
	ctx := context.Background()

	resources, err := client.ListResources(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 2)

	roles, err := client.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	require.Equal(t, "admin", roles[0].Name)

	err = client.UpdateUser(ctx, "missing", adminsdk.UpdateUserRequest{Username: "x", Email: "x@example.test"})
	var apiErr *adminsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "当前用户不存在", apiErr.Description)

	_, err = os.Stat(cfg.PepperFile)
	require.NoError(t, err, "pepper is created on first start")
}

func TestShutdownWithoutRun(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.JWKSRefresh = 5 * time.Minute

	app, err := New(cfg)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- app.Shutdown()
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Shutdown blocked on an application that never ran")
	}

	require.NoError(t, app.Shutdown(), "second shutdown is a no-op")
}

func TestRunReleasesOnServerError(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.JWKSRefresh = 5 * time.Minute

	app, err := New(cfg)
	require.NoError(t, err)
	app.server.Addr = "invalid-address"

	require.Error(t, app.Run())
	require.Error(t, app.db.Ping(context.Background()), "database is closed after a failed start")
}
