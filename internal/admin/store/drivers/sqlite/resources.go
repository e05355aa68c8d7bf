package sqlite

import (
	"context"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store/drivers/sqlite/gen"
)

type resourcesRepo struct {
	q *gen.Queries
}

func (r *resourcesRepo) ListAll(ctx context.Context) ([]domain.Resource, error) {
	rows, err := r.q.ListAllResources(ctx)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, mapResource), nil
}

func (r *resourcesRepo) ListByIDs(ctx context.Context, ids []string) ([]domain.Resource, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.ListResourcesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, mapResource), nil
}

func (r *resourcesRepo) ListByNames(ctx context.Context, names []string) ([]domain.Resource, error) {
	if len(names) == 0 {
		return nil, nil
	}
	rows, err := r.q.ListResourcesByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, mapResource), nil
}

func (r *resourcesRepo) CreateResource(ctx context.Context, res domain.Resource) error {
	return mapWriteErr(r.q.CreateResource(ctx, gen.CreateResourceParams{
		ID:   res.ID,
		Name: res.Name,
	}))
}
