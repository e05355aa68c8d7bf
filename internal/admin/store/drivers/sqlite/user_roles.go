package sqlite

import (
	"context"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store/drivers/sqlite/gen"
)

type userRolesRepo struct {
	q *gen.Queries
}

func (r *userRolesRepo) ListRoleNamesForUser(ctx context.Context, userID string) ([]string, error) {
	return r.q.ListRoleNamesForUser(ctx, userID)
}

func (r *userRolesRepo) ListAll(ctx context.Context) ([]domain.UserRole, error) {
	rows, err := r.q.ListAllUserRoles(ctx)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, func(row gen.UserRole) domain.UserRole {
		return domain.UserRole{UserID: row.UserID, RoleID: row.RoleID}
	}), nil
}

func (r *userRolesRepo) AddUserToRole(ctx context.Context, userID, roleID string) error {
	return mapWriteErr(r.q.CreateUserRole(ctx, gen.CreateUserRoleParams{
		UserID: userID,
		RoleID: roleID,
	}))
}

func (r *userRolesRepo) RemoveUserFromRole(ctx context.Context, userID, roleID string) error {
	return mapAffected(r.q.DeleteUserRole(ctx, gen.DeleteUserRoleParams{
		UserID: userID,
		RoleID: roleID,
	}))
}
