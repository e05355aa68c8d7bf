package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/identity"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store/drivers/sqlite"
	"github.com/aussiebroadwan/roleadmin/pkg/cryptox"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const testPassword = "Passw0rd"

type fixture struct {
	store      *sqlite.Store
	identity   *identity.Manager
	assign     *AssignmentService
	resources  *ResourceService
	seed       *SeedService
	resourceID map[string]string // name to id
}

func newFixture(t *testing.T, tag language.Tag, resources ...string) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	opts := identity.DefaultOptions()
	opts.Locale = tag
	im := identity.NewManager(st, cryptox.NewArgon2Hasher("test-pepper"), opts)

	f := &fixture{
		store:      st,
		identity:   im,
		assign:     &AssignmentService{Store: st, Identity: im},
		resources:  &ResourceService{Store: st},
		seed:       &SeedService{Store: st, Identity: im},
		resourceID: make(map[string]string),
	}

	ctx := context.Background()
	require.NoError(t, f.seed.Seed(ctx, domain.SeedData{Resources: resources}))
	all, err := f.resources.ListResources(ctx)
	require.NoError(t, err)
	for _, r := range all {
		f.resourceID[r.Name] = r.ID
	}
	return f
}

func (f *fixture) ids(names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = f.resourceID[n]
	}
	return out
}

func (f *fixture) roleByName(t *testing.T, name string) domain.RoleModel {
	t.Helper()
	roles, err := f.assign.GetRoles(context.Background())
	require.NoError(t, err)
	for _, r := range roles {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("role %q not found", name)
	return domain.RoleModel{}
}

func (f *fixture) createUser(t *testing.T, name string) domain.User {
	t.Helper()
	ctx := context.Background()
	require.Empty(t, f.assign.CreateUser(ctx, name, name+"@example.test", testPassword))

	users, err := f.identity.ListUsers(ctx)
	require.NoError(t, err)
	for _, u := range users {
		if u.Username == name {
			return u
		}
	}
	t.Fatalf("user %q not found", name)
	return domain.User{}
}
