package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/identity"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store"
	"github.com/aussiebroadwan/roleadmin/pkg/idx"
	"github.com/aussiebroadwan/roleadmin/pkg/slogx"
)

var ErrSeedFailed = errors.New("seed failed")

// SeedService makes sure configured resources and protected roles exist
// before the service takes traffic. Running it again is a no-op.
type SeedService struct {
	Store    store.Store
	Identity *identity.Manager
}

// Seed applies data in a single transaction.
func (s *SeedService) Seed(ctx context.Context, data domain.SeedData) error {
	l := slogx.FromContext(ctx)

	var resources, roles int
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if resources, err = ensureResources(ctx, tx, data.Resources); err != nil {
			return err
		}
		roles, err = s.ensureProtectedRoles(ctx, s.Identity.WithStore(tx), data.ProtectedRoles)
		return err
	})
	if err != nil {
		l.Error("seeding failed", slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrSeedFailed, err)
	}

	l.Info("seeding complete",
		slog.Int("resources_created", resources),
		slog.Int("roles_protected", roles),
	)
	return nil
}

// ensureProtectedRoles creates the named roles as protected, or marks them
// protected if they already exist. It returns how many roles it changed.
func (s *SeedService) ensureProtectedRoles(ctx context.Context, im *identity.Manager, names []string) (int, error) {
	changed := 0
	for _, name := range idx.Distinct(names) {
		role, err := im.FindRoleByName(ctx, name)
		switch {
		case errors.Is(err, store.ErrNotFound):
			role = domain.Role{Name: name, Protected: true}
			if err := im.CreateRole(ctx, &role).Err(); err != nil {
				return changed, fmt.Errorf("create role %q: %w", name, err)
			}
			changed++
		case err != nil:
			return changed, fmt.Errorf("find role %q: %w", name, err)
		case !role.Protected:
			if err := s.protect(ctx, im, role); err != nil {
				return changed, err
			}
			changed++
		}
	}
	return changed, nil
}

func (s *SeedService) protect(ctx context.Context, im *identity.Manager, role domain.Role) error {
	if err := im.Protect(ctx, role.ID); err != nil {
		return fmt.Errorf("protect role %q: %w", role.Name, err)
	}
	slogx.FromContext(ctx).Info("role marked protected", slog.String("role_id", role.ID))
	return nil
}
