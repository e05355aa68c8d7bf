package http_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	adminhttp "github.com/aussiebroadwan/roleadmin/internal/admin/http"
	"github.com/aussiebroadwan/roleadmin/internal/admin/identity"
	"github.com/aussiebroadwan/roleadmin/internal/admin/service"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store/drivers/sqlite"
	"github.com/aussiebroadwan/roleadmin/pkg/adminsdk"
	"github.com/aussiebroadwan/roleadmin/pkg/cryptox"
	"github.com/aussiebroadwan/roleadmin/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://id.example.test"
	testPassword = "Passw0rd"
)

type testServer struct {
	url  string
	sign func(scopes ...string) string
}

func newTestServer(t *testing.T, resources ...string) *testServer {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	im := identity.NewManager(st, cryptox.NewArgon2Hasher("pepper"), identity.DefaultOptions())
	seed := &service.SeedService{Store: st, Identity: im}
	require.NoError(t, seed.Seed(ctx, domain.SeedData{Resources: resources, ProtectedRoles: []string{"admin"}}))

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(jwtx.NewEd25519JWK("k1", pub)))
	verifier := jwtx.NewKeySetVerifier(keys, jwtx.VerifyOptions{Issuer: testIssuer})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := adminhttp.NewRouter(keys, verifier, "test", st, logger)
	router.Assignments = &service.AssignmentService{Store: st, Identity: im}
	router.Resources = &service.ResourceService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		url: srv.URL,
		sign: func(scopes ...string) string {
			claims := jwtx.NewClaims("operator-1", scopes, testIssuer, nil, time.Minute, time.Now())
			token, err := jwtx.Sign(claims, "k1", priv)
			require.NoError(t, err)
			return token
		},
	}
}

func (s *testServer) client(scopes ...string) *adminsdk.Client {
	return adminsdk.NewClient(s.url, s.sign(scopes...))
}

func requireAPIError(t *testing.T, err error, status int, code string) *adminsdk.APIError {
	t.Helper()
	var apiErr *adminsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func resourceIDs(t *testing.T, c *adminsdk.Client) map[string]string {
	t.Helper()
	resources, err := c.ListResources(context.Background())
	require.NoError(t, err)
	out := make(map[string]string, len(resources))
	for _, r := range resources {
		out[r.Name] = r.ID
	}
	return out
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestServer(t)

	_, err := adminsdk.NewClient(s.url, "garbage").ListRoles(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, adminsdk.ErrorCodeInvalidToken)

	err = s.client(adminhttp.ScopeRead).CreateRole(ctx, adminsdk.CreateRoleRequest{Name: "editor"})
	requireAPIError(t, err, http.StatusForbidden, adminsdk.ErrorCodeInsufficientScope)

	_, err = s.client(adminhttp.ScopeWrite).ListRoles(ctx)
	require.NoError(t, err, "write scope also grants reads")
}

func TestRoleEndpoints(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestServer(t, "posts", "comments")
	c := s.client(adminhttp.ScopeWrite)
	res := resourceIDs(t, c)

	require.NoError(t, c.CreateRole(ctx, adminsdk.CreateRoleRequest{
		Name:        "editor",
		ResourceIDs: []string{res["posts"], res["comments"]},
	}))

	err := c.CreateRole(ctx, adminsdk.CreateRoleRequest{Name: "editor"})
	apiErr := requireAPIError(t, err, http.StatusUnprocessableEntity, adminsdk.ErrorCodeOperationFailed)
	require.Equal(t, "Role name 'editor' is already taken.", apiErr.Description)

	err = c.CreateRole(ctx, adminsdk.CreateRoleRequest{})
	apiErr = requireAPIError(t, err, http.StatusBadRequest, adminsdk.ErrorCodeValidation)
	require.Equal(t, "required", apiErr.Details["name"])

	roles, err := c.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 2)

	var editor adminsdk.Role
	for _, r := range roles {
		if r.Name == "editor" {
			editor = r
		}
	}
	require.ElementsMatch(t, []string{res["posts"], res["comments"]}, editor.ResourceIDs)

	names, err := c.LookupRoles(ctx, []string{res["posts"]}, nil)
	require.NoError(t, err)
	require.Equal(t, "editor", names)

	names, err = c.LookupRoles(ctx, nil, []string{"comments"})
	require.NoError(t, err)
	require.Equal(t, "editor", names)

	require.NoError(t, c.SetRoleResources(ctx, editor.ID, []string{res["comments"]}))
	names, err = c.LookupRoles(ctx, []string{res["posts"]}, nil)
	require.NoError(t, err)
	require.Empty(t, names)

	require.NoError(t, c.DeleteRoles(ctx, editor.ID))
}

func TestDeleteProtectedRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestServer(t)
	c := s.client(adminhttp.ScopeWrite)

	roles, err := c.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 1)

	err = c.DeleteRoles(ctx, roles[0].ID)
	apiErr := requireAPIError(t, err, http.StatusUnprocessableEntity, adminsdk.ErrorCodeOperationFailed)
	require.Equal(t, "Role 'admin' is protected and cannot be deleted.", apiErr.Description)

	err = c.DeleteRoles(ctx)
	requireAPIError(t, err, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest)
}

func TestUserEndpoints(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestServer(t)
	c := s.client(adminhttp.ScopeWrite)

	require.NoError(t, c.CreateUser(ctx, adminsdk.CreateUserRequest{
		Username: "alice", Email: "alice@example.test", Password: testPassword,
	}))

	err := c.CreateUser(ctx, adminsdk.CreateUserRequest{
		Username: "bob", Email: "not-an-email", Password: testPassword,
	})
	apiErr := requireAPIError(t, err, http.StatusUnprocessableEntity, adminsdk.ErrorCodeOperationFailed)
	require.Equal(t, "Email 'not-an-email' is invalid.", apiErr.Description)

	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	alice := users[0]
	require.Empty(t, alice.RoleIDs)

	roles, err := c.ListRoles(ctx)
	require.NoError(t, err)

	require.NoError(t, c.UpdateUser(ctx, alice.ID, adminsdk.UpdateUserRequest{
		Username: "alice", Email: "alice@example.test", RoleIDs: []string{roles[0].ID},
	}))
	users, err = c.ListUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{roles[0].ID}, users[0].RoleIDs)

	err = c.UpdateUser(ctx, "missing", adminsdk.UpdateUserRequest{Username: "x", Email: "x@example.test"})
	apiErr = requireAPIError(t, err, http.StatusUnprocessableEntity, adminsdk.ErrorCodeOperationFailed)
	require.Equal(t, "The current user does not exist.", apiErr.Description)

	require.NoError(t, c.DeleteUsers(ctx, alice.ID))
	users, err = c.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestServer(t)
	c := adminsdk.NewClient(s.url, "")

	live, err := c.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Keys)
}
