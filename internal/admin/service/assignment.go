package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/identity"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store"
	"github.com/aussiebroadwan/roleadmin/pkg/idx"
	"github.com/aussiebroadwan/roleadmin/pkg/slogx"
)

// Assignments is the user, role and role-resource administration contract.
// Write operations return an outcome message: "" on success, otherwise a
// human readable failure.
type Assignments interface {
	CreateRole(ctx context.Context, name string, resourceIDs []string) string
	DeleteRoles(ctx context.Context, ids ...string) string
	CreateUser(ctx context.Context, username, email, password string) string
	DeleteUsers(ctx context.Context, ids ...string) string
	UpdateUser(ctx context.Context, model domain.UserModel) string
	GetRoles(ctx context.Context) ([]domain.RoleModel, error)
	GetRolesWithResources(ctx context.Context, resourceIDs ...string) (string, error)
}

var _ Assignments = (*AssignmentService)(nil)

type AssignmentService struct {
	Store    store.Store
	Identity *identity.Manager
}

// inTx runs fn in one transaction with the identity manager bound to it. A
// failed Result from fn rolls everything back and becomes the outcome.
func (s *AssignmentService) inTx(
	ctx context.Context,
	op string,
	fn func(tx store.Tx, im *identity.Manager) identity.Result,
) string {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(tx, s.Identity.WithStore(tx)).Err()
	})
	if err == nil {
		return ""
	}

	var rerr *identity.ResultError
	if errors.As(err, &rerr) {
		slogx.FromContext(ctx).Info("operation rejected",
			slog.String("op", op),
			slog.String("result", rerr.Result.String()),
		)
		return rerr.Result.Message()
	}
	return s.storeFailure(ctx, op, err).Message()
}

func (s *AssignmentService) storeFailure(ctx context.Context, op string, err error) identity.Result {
	slogx.FromContext(ctx).Error("assignment store failure",
		slog.String("op", op),
		slog.Any("error", err),
	)
	return identity.Failed(s.Identity.Describer().DefaultError())
}

// CreateRole creates a role named name granted resourceIDs. The role and its
// grants are written in one transaction. Repeated ids are collapsed and an
// unknown resource id fails the whole operation.
func (s *AssignmentService) CreateRole(ctx context.Context, name string, resourceIDs []string) string {
	ids := idx.Distinct(resourceIDs)

	return s.inTx(ctx, "create_role", func(tx store.Tx, im *identity.Manager) identity.Result {
		role := &domain.Role{Name: name}
		if res := im.CreateRole(ctx, role); !res.Succeeded() {
			return res
		}
		if res := s.grant(ctx, tx, im, role.ID, ids); !res.Succeeded() {
			return res
		}

		slogx.FromContext(ctx).Info("role created",
			slog.String("role_id", role.ID),
			slog.String("name", role.Name),
			slog.Int("resources", len(ids)),
		)
		return identity.Ok
	})
}

// SetRoleResources replaces the resources granted to a role in one
// transaction.
func (s *AssignmentService) SetRoleResources(ctx context.Context, roleID string, resourceIDs []string) string {
	ids := idx.Distinct(resourceIDs)

	return s.inTx(ctx, "set_role_resources", func(tx store.Tx, im *identity.Manager) identity.Result {
		role, err := im.FindRoleByID(ctx, roleID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			return identity.Failed(im.Describer().RoleNotFound(roleID))
		case err != nil:
			return s.storeFailure(ctx, "set_role_resources", err)
		}

		if err := tx.RoleResources().DeleteByRoleID(ctx, role.ID); err != nil {
			return s.storeFailure(ctx, "set_role_resources", err)
		}
		return s.grant(ctx, tx, im, role.ID, ids)
	})
}

// grant checks that every resource exists and then writes one RoleResource
// per id.
func (s *AssignmentService) grant(
	ctx context.Context,
	tx store.Tx,
	im *identity.Manager,
	roleID string,
	resourceIDs []string,
) identity.Result {
	if len(resourceIDs) == 0 {
		return identity.Ok
	}

	found, err := tx.Resources().ListByIDs(ctx, resourceIDs)
	if err != nil {
		return s.storeFailure(ctx, "grant", err)
	}
	known := make(map[string]struct{}, len(found))
	for _, r := range found {
		known[r.ID] = struct{}{}
	}

	var missing []identity.Error
	for _, id := range resourceIDs {
		if _, ok := known[id]; !ok {
			missing = append(missing, im.Describer().UnknownResource(id))
		}
	}
	if len(missing) > 0 {
		return identity.Failed(missing...)
	}

	for _, id := range resourceIDs {
		err := tx.RoleResources().CreateRoleResource(ctx, domain.RoleResource{RoleID: roleID, ResourceID: id})
		if err != nil {
			return s.storeFailure(ctx, "grant", err)
		}
	}
	return identity.Ok
}

// DeleteRoles deletes the roles one at a time in the order given. It stops at
// the first failure and returns its message; roles deleted before that stay
// deleted. Unknown ids are skipped.
func (s *AssignmentService) DeleteRoles(ctx context.Context, ids ...string) string {
	ids = idx.Distinct(ids)
	if len(ids) == 0 {
		return ""
	}

	roles, err := s.Identity.ListRoles(ctx, ids...)
	if err != nil {
		return s.storeFailure(ctx, "delete_roles", err).Message()
	}
	byID := make(map[string]domain.Role, len(roles))
	for _, r := range roles {
		byID[r.ID] = r
	}

	l := slogx.FromContext(ctx)
	for _, id := range ids {
		role, ok := byID[id]
		if !ok {
			continue
		}
		if res := s.Identity.DeleteRole(ctx, role); !res.Succeeded() {
			l.Warn("delete roles stopped", slog.String("role_id", id), slog.String("result", res.String()))
			return res.Message()
		}
		l.Info("role deleted", slog.String("role_id", id), slog.String("name", role.Name))
	}
	return ""
}

// CreateUser creates a user with the given credentials.
func (s *AssignmentService) CreateUser(ctx context.Context, username, email, password string) string {
	u := &domain.User{Username: username, Email: email}
	res := s.Identity.CreateUser(ctx, u, password)
	if res.Succeeded() {
		slogx.FromContext(ctx).Info("user created", slog.String("user_id", u.ID))
	}
	return res.Message()
}

// DeleteUsers deletes users one at a time with the same stop-on-first-failure
// behaviour as DeleteRoles.
func (s *AssignmentService) DeleteUsers(ctx context.Context, ids ...string) string {
	ids = idx.Distinct(ids)
	if len(ids) == 0 {
		return ""
	}

	users, err := s.Identity.ListUsers(ctx, ids...)
	if err != nil {
		return s.storeFailure(ctx, "delete_users", err).Message()
	}
	byID := make(map[string]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	l := slogx.FromContext(ctx)
	for _, id := range ids {
		u, ok := byID[id]
		if !ok {
			continue
		}
		if res := s.Identity.DeleteUser(ctx, u); !res.Succeeded() {
			l.Warn("delete users stopped", slog.String("user_id", id), slog.String("result", res.String()))
			return res.Message()
		}
		l.Info("user deleted", slog.String("user_id", id))
	}
	return ""
}

// UpdateUser writes the username and email and replaces the user's role set
// with model.RoleIDs, all in one transaction. Role ids that match no role are
// ignored.
func (s *AssignmentService) UpdateUser(ctx context.Context, model domain.UserModel) string {
	return s.inTx(ctx, "update_user", func(_ store.Tx, im *identity.Manager) identity.Result {
		u, err := im.FindUserByID(ctx, model.ID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			return identity.Failed(im.Describer().UserNotFound())
		case err != nil:
			return s.storeFailure(ctx, "update_user", err)
		}

		u.Username = model.Username
		u.Email = model.Email

		current, err := im.GetRolesForUser(ctx, u)
		if err != nil {
			return s.storeFailure(ctx, "update_user", err)
		}
		if res := im.RemoveFromRoles(ctx, u, current...); !res.Succeeded() {
			return res
		}

		if ids := idx.Distinct(model.RoleIDs); len(ids) > 0 {
			roles, err := im.ListRoles(ctx, ids...)
			if err != nil {
				return s.storeFailure(ctx, "update_user", err)
			}
			names := make([]string, len(roles))
			for i, r := range roles {
				names[i] = r.Name
			}
			if res := im.AddToRoles(ctx, u, names...); !res.Succeeded() {
				return res
			}
		}

		return im.UpdateUser(ctx, &u)
	})
}

// GetRoles returns every role with the ids of the resources it grants.
func (s *AssignmentService) GetRoles(ctx context.Context) ([]domain.RoleModel, error) {
	var out []domain.RoleModel
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		roles, err := tx.Roles().ListAll(ctx)
		if err != nil {
			return err
		}
		grants, err := tx.RoleResources().ListAll(ctx)
		if err != nil {
			return err
		}

		byRole := make(map[string][]string, len(roles))
		for _, g := range grants {
			byRole[g.RoleID] = append(byRole[g.RoleID], g.ResourceID)
		}

		out = make([]domain.RoleModel, 0, len(roles))
		for _, r := range roles {
			ids := byRole[r.ID]
			if ids == nil {
				ids = []string{}
			}
			out = append(out, domain.RoleModel{ID: r.ID, Name: r.Name, ResourceIDs: ids})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetRolesWithResources returns the comma-joined names of the roles granted
// any of resourceIDs, each name once, ordered by name. It is "" when no role
// matches.
func (s *AssignmentService) GetRolesWithResources(ctx context.Context, resourceIDs ...string) (string, error) {
	var names string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		names, err = roleNamesFor(ctx, tx, idx.Distinct(resourceIDs))
		return err
	})
	return names, err
}

// GetRolesForResourceNames is GetRolesWithResources keyed by resource name.
// Unknown names match nothing.
func (s *AssignmentService) GetRolesForResourceNames(ctx context.Context, resourceNames ...string) (string, error) {
	var names string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		resources, err := tx.Resources().ListByNames(ctx, idx.Distinct(resourceNames))
		if err != nil {
			return err
		}
		ids := make([]string, len(resources))
		for i, r := range resources {
			ids[i] = r.ID
		}
		names, err = roleNamesFor(ctx, tx, ids)
		return err
	})
	return names, err
}

func roleNamesFor(ctx context.Context, st store.Store, resourceIDs []string) (string, error) {
	if len(resourceIDs) == 0 {
		return "", nil
	}
	roleIDs, err := st.RoleResources().ListRoleIDsByResourceIDs(ctx, resourceIDs)
	if err != nil || len(roleIDs) == 0 {
		return "", err
	}
	roles, err := st.Roles().ListByIDs(ctx, roleIDs)
	if err != nil {
		return "", err
	}

	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.Name
	}
	return strings.Join(names, ","), nil
}

// GetUsers returns every user with the ids of the roles they hold.
func (s *AssignmentService) GetUsers(ctx context.Context) ([]domain.UserModel, error) {
	var out []domain.UserModel
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		users, err := tx.Users().ListUsers(ctx)
		if err != nil {
			return err
		}
		memberships, err := tx.UserRoles().ListAll(ctx)
		if err != nil {
			return err
		}

		byUser := make(map[string][]string, len(users))
		for _, m := range memberships {
			byUser[m.UserID] = append(byUser[m.UserID], m.RoleID)
		}

		out = make([]domain.UserModel, 0, len(users))
		for _, u := range users {
			ids := byUser[u.ID]
			if ids == nil {
				ids = []string{}
			}
			out = append(out, domain.UserModel{ID: u.ID, Username: u.Username, Email: u.Email, RoleIDs: ids})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
