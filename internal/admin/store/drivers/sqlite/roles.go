package sqlite

import (
	"context"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store/drivers/sqlite/gen"
)

type rolesRepo struct {
	q *gen.Queries
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	row, err := r.q.GetRoleByID(ctx, id)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return mapRole(row), nil
}

func (r *rolesRepo) GetRoleByNormalizedName(ctx context.Context, normalized string) (domain.Role, error) {
	row, err := r.q.GetRoleByNormalizedName(ctx, normalized)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return mapRole(row), nil
}

func (r *rolesRepo) ListAll(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.q.ListAllRoles(ctx)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, mapRole), nil
}

func (r *rolesRepo) ListByIDs(ctx context.Context, ids []string) ([]domain.Role, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.ListRolesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, mapRole), nil
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	return mapWriteErr(r.q.CreateRole(ctx, gen.CreateRoleParams{
		ID:             role.ID,
		Name:           role.Name,
		NormalizedName: role.NormalizedName,
		Protected:      role.Protected,
	}))
}

func (r *rolesRepo) SetProtected(ctx context.Context, id string, protected bool) error {
	return mapAffected(r.q.SetRoleProtected(ctx, gen.SetRoleProtectedParams{
		Protected: protected,
		ID:        id,
	}))
}

func (r *rolesRepo) DeleteRole(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteRole(ctx, id))
}
