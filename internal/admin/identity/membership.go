package identity

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store"
)

// GetRolesForUser returns the names of u's roles ordered by name.
func (m *Manager) GetRolesForUser(ctx context.Context, u domain.User) ([]string, error) {
	return m.store.UserRoles().ListRoleNamesForUser(ctx, u.ID)
}

// AddToRoles adds u to each named role in order, stopping at the first
// failure. Earlier additions are not undone; run inside a transaction when
// that matters.
func (m *Manager) AddToRoles(ctx context.Context, u domain.User, roles ...string) Result {
	for _, name := range roles {
		role, err := m.FindRoleByName(ctx, name)
		switch {
		case errors.Is(err, store.ErrNotFound):
			return Failed(m.describe.RoleNotFound(name))
		case err != nil:
			return m.failure(ctx, "add_to_roles", err)
		}

		switch err := m.store.UserRoles().AddUserToRole(ctx, u.ID, role.ID); {
		case errors.Is(err, store.ErrAlreadyExists):
			return Failed(m.describe.UserAlreadyInRole(role.Name))
		case errors.Is(err, store.ErrConflict):
			return Failed(m.describe.UserNotFound())
		case err != nil:
			return m.failure(ctx, "add_to_roles", err)
		}
	}
	return Ok
}

// RemoveFromRoles removes u from each named role in order, stopping at the
// first failure.
func (m *Manager) RemoveFromRoles(ctx context.Context, u domain.User, roles ...string) Result {
	for _, name := range roles {
		role, err := m.FindRoleByName(ctx, name)
		switch {
		case errors.Is(err, store.ErrNotFound):
			return Failed(m.describe.RoleNotFound(name))
		case err != nil:
			return m.failure(ctx, "remove_from_roles", err)
		}

		switch err := m.store.UserRoles().RemoveUserFromRole(ctx, u.ID, role.ID); {
		case errors.Is(err, store.ErrNotFound):
			return Failed(m.describe.UserNotInRole(role.Name))
		case err != nil:
			return m.failure(ctx, "remove_from_roles", err)
		}
	}
	return Ok
}
