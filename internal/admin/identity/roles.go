package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store"
	"github.com/aussiebroadwan/roleadmin/pkg/idx"
)

// CreateRole validates and stores r. A ULID is assigned when r.ID is empty.
func (m *Manager) CreateRole(ctx context.Context, r *domain.Role) Result {
	r.Name = strings.TrimSpace(r.Name)

	errs, err := m.validateRole(ctx, r)
	if err != nil {
		return m.failure(ctx, "create_role", err)
	}
	if len(errs) > 0 {
		return Failed(errs...)
	}

	if r.ID == "" {
		r.ID = idx.New().String()
	}
	r.NormalizedName = Normalize(r.Name)

	switch err := m.store.Roles().CreateRole(ctx, *r); {
	case errors.Is(err, store.ErrAlreadyExists):
		return Failed(m.describe.DuplicateRoleName(r.Name))
	case err != nil:
		return m.failure(ctx, "create_role", err)
	}
	return Ok
}

// DeleteRole removes r with its memberships and resource grants. Protected
// roles are refused.
func (m *Manager) DeleteRole(ctx context.Context, r domain.Role) Result {
	if r.Protected {
		return Failed(m.describe.RoleProtected(r.Name))
	}

	switch err := m.store.Roles().DeleteRole(ctx, r.ID); {
	case errors.Is(err, store.ErrNotFound):
		return Failed(m.describe.RoleNotFound(r.Name))
	case err != nil:
		return m.failure(ctx, "delete_role", err)
	}
	return Ok
}

// FindRoleByID returns store.ErrNotFound when no role has id.
func (m *Manager) FindRoleByID(ctx context.Context, id string) (domain.Role, error) {
	return m.store.Roles().GetRoleByID(ctx, id)
}

// FindRoleByName looks a role up by its normalized name.
func (m *Manager) FindRoleByName(ctx context.Context, name string) (domain.Role, error) {
	return m.store.Roles().GetRoleByNormalizedName(ctx, Normalize(name))
}

// ListRoles returns the roles with the given ids, or every role when no ids
// are given. Roles are ordered by name.
func (m *Manager) ListRoles(ctx context.Context, ids ...string) ([]domain.Role, error) {
	if len(ids) == 0 {
		return m.store.Roles().ListAll(ctx)
	}
	return m.store.Roles().ListByIDs(ctx, ids)
}

// Protect marks the role as protected so it can no longer be deleted.
func (m *Manager) Protect(ctx context.Context, roleID string) error {
	return m.store.Roles().SetProtected(ctx, roleID, true)
}
