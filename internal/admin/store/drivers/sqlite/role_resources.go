package sqlite

import (
	"context"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store/drivers/sqlite/gen"
)

type roleResourcesRepo struct {
	q *gen.Queries
}

func (r *roleResourcesRepo) ListAll(ctx context.Context) ([]domain.RoleResource, error) {
	rows, err := r.q.ListAllRoleResources(ctx)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, mapRoleResource), nil
}

func (r *roleResourcesRepo) ListRoleIDsByResourceIDs(ctx context.Context, resourceIDs []string) ([]string, error) {
	if len(resourceIDs) == 0 {
		return nil, nil
	}
	return r.q.ListRoleIDsByResourceIDs(ctx, resourceIDs)
}

func (r *roleResourcesRepo) CreateRoleResource(ctx context.Context, rr domain.RoleResource) error {
	return mapWriteErr(r.q.CreateRoleResource(ctx, gen.CreateRoleResourceParams{
		RoleID:     rr.RoleID,
		ResourceID: rr.ResourceID,
	}))
}

func (r *roleResourcesRepo) DeleteByRoleID(ctx context.Context, roleID string) error {
	return r.q.DeleteRoleResourcesByRoleID(ctx, roleID)
}
