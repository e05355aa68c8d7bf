package sqlite

import (
	"context"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByNormalizedUsername(ctx context.Context, normalized string) (domain.User, error) {
	row, err := r.q.GetUserByNormalizedUsername(ctx, normalized)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByNormalizedEmail(ctx context.Context, normalized string) (domain.User, error) {
	row, err := r.q.GetUserByNormalizedEmail(ctx, normalized)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, mapUser), nil
}

func (r *usersRepo) ListUsersByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.ListUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, mapUser), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	return mapWriteErr(r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:                 u.ID,
		Username:           u.Username,
		NormalizedUsername: u.NormalizedUsername,
		Email:              u.Email,
		NormalizedEmail:    u.NormalizedEmail,
		PasswordHash:       u.PasswordHash,
	}))
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	return mapAffected(r.q.UpdateUser(ctx, gen.UpdateUserParams{
		Username:           u.Username,
		NormalizedUsername: u.NormalizedUsername,
		Email:              u.Email,
		NormalizedEmail:    u.NormalizedEmail,
		ID:                 u.ID,
	}))
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteUser(ctx, id))
}
