package identity

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store"
	"github.com/aussiebroadwan/roleadmin/pkg/idx"
	"github.com/aussiebroadwan/roleadmin/pkg/slogx"
	"github.com/go-playground/validator/v10"
)

// PasswordHasher turns a password into a storable hash.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// Manager owns users, roles and memberships. Every method reports rule
// violations as a failed Result and never returns raw store errors for
// writes; lookups return store.ErrNotFound.
type Manager struct {
	store    store.Store
	hasher   PasswordHasher
	opts     Options
	describe Describer
	validate *validator.Validate
}

// NewManager returns a Manager backed by st.
func NewManager(st store.Store, hasher PasswordHasher, opts Options) *Manager {
	return &Manager{
		store:    st,
		hasher:   hasher,
		opts:     opts,
		describe: NewDescriber(opts.Locale),
		validate: validator.New(),
	}
}

// WithStore returns a copy of m that reads and writes through st, usually a
// store.Tx so identity writes join the caller's transaction.
func (m *Manager) WithStore(st store.Store) *Manager {
	cp := *m
	cp.store = st
	return &cp
}

// Describer exposes the localized error builder.
func (m *Manager) Describer() Describer { return m.describe }

// failure logs an unexpected store error and hides it behind DefaultError.
func (m *Manager) failure(ctx context.Context, op string, err error) Result {
	slogx.FromContext(ctx).Error("identity store failure",
		slog.String("op", op),
		slog.Any("error", err),
	)
	return Failed(m.describe.DefaultError())
}

// CreateUser validates u and password, hashes the password and stores the
// user. A ULID is assigned when u.ID is empty.
func (m *Manager) CreateUser(ctx context.Context, u *domain.User, password string) Result {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)

	errs, err := m.validateUser(ctx, u)
	if err != nil {
		return m.failure(ctx, "create_user", err)
	}
	errs = append(errs, m.validatePassword(password)...)
	if len(errs) > 0 {
		return Failed(errs...)
	}

	hash, err := m.hasher.HashPassword(password)
	if err != nil {
		return m.failure(ctx, "create_user", err)
	}

	if u.ID == "" {
		u.ID = idx.New().String()
	}
	u.NormalizedUsername = Normalize(u.Username)
	u.NormalizedEmail = Normalize(u.Email)
	u.PasswordHash = hash

	switch err := m.store.Users().CreateUser(ctx, *u); {
	case errors.Is(err, store.ErrAlreadyExists):
		return Failed(m.describe.DuplicateUserName(u.Username))
	case err != nil:
		return m.failure(ctx, "create_user", err)
	}
	return Ok
}

// UpdateUser validates and writes u's username and email.
func (m *Manager) UpdateUser(ctx context.Context, u *domain.User) Result {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)

	errs, err := m.validateUser(ctx, u)
	if err != nil {
		return m.failure(ctx, "update_user", err)
	}
	if len(errs) > 0 {
		return Failed(errs...)
	}

	u.NormalizedUsername = Normalize(u.Username)
	u.NormalizedEmail = Normalize(u.Email)

	switch err := m.store.Users().UpdateUser(ctx, *u); {
	case errors.Is(err, store.ErrNotFound):
		return Failed(m.describe.UserNotFound())
	case errors.Is(err, store.ErrAlreadyExists):
		return Failed(m.describe.DuplicateUserName(u.Username))
	case err != nil:
		return m.failure(ctx, "update_user", err)
	}
	return Ok
}

// DeleteUser removes u and its memberships.
func (m *Manager) DeleteUser(ctx context.Context, u domain.User) Result {
	switch err := m.store.Users().DeleteUser(ctx, u.ID); {
	case errors.Is(err, store.ErrNotFound):
		return Failed(m.describe.UserNotFound())
	case err != nil:
		return m.failure(ctx, "delete_user", err)
	}
	return Ok
}

// FindUserByID returns store.ErrNotFound when no user has id.
func (m *Manager) FindUserByID(ctx context.Context, id string) (domain.User, error) {
	return m.store.Users().GetUserByID(ctx, id)
}

// ListUsers returns the users with the given ids, or every user when no ids
// are given.
func (m *Manager) ListUsers(ctx context.Context, ids ...string) ([]domain.User, error) {
	if len(ids) == 0 {
		return m.store.Users().ListUsers(ctx)
	}
	return m.store.Users().ListUsersByIDs(ctx, ids)
}
