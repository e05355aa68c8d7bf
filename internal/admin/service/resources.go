package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store"
	"github.com/aussiebroadwan/roleadmin/pkg/idx"
	"github.com/aussiebroadwan/roleadmin/pkg/slogx"
)

type ResourceService struct {
	Store store.Store
}

// ListResources returns every resource ordered by name.
func (s *ResourceService) ListResources(ctx context.Context) ([]domain.Resource, error) {
	return s.Store.Resources().ListAll(ctx)
}

// ensureResources creates the named resources that do not exist yet and
// returns how many it created. Resources are otherwise read-only.
func ensureResources(ctx context.Context, st store.Store, names []string) (int, error) {
	names = idx.Distinct(names)
	if len(names) == 0 {
		return 0, nil
	}

	existing, err := st.Resources().ListByNames(ctx, names)
	if err != nil {
		return 0, fmt.Errorf("list resources: %w", err)
	}
	have := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		have[r.Name] = struct{}{}
	}

	created := 0
	for _, name := range names {
		if _, ok := have[name]; ok {
			continue
		}
		res := domain.Resource{ID: idx.New().String(), Name: name}
		if err := st.Resources().CreateResource(ctx, res); err != nil {
			return created, fmt.Errorf("create resource %q: %w", name, err)
		}
		slogx.FromContext(ctx).Info("resource created",
			slog.String("resource_id", res.ID),
			slog.String("name", name),
		)
		created++
	}
	return created, nil
}
