package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store/drivers/sqlite/gen"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// NewStore opens the database at dsn (a file path or ":memory:").
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite serialises writers anyway. A single connection also keeps
	// ":memory:" databases and per-connection pragmas consistent.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		`PRAGMA foreign_keys = ON;`,
		`PRAGMA busy_timeout = 5000;`,
	} {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Safe to call after commit, it reports sql.ErrTxDone which we ignore.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users                 { return &usersRepo{q: s.q} }
func (s *Store) Roles() store.Roles                 { return &rolesRepo{q: s.q} }
func (s *Store) UserRoles() store.UserRoles         { return &userRolesRepo{q: s.q} }
func (s *Store) Resources() store.Resources         { return &resourcesRepo{q: s.q} }
func (s *Store) RoleResources() store.RoleResources { return &roleResourcesRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapWriteErr translates constraint violations into store sentinels. The
// driver error is kept in the chain for logging.
func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}

	var serr *msqlite.Error
	if !errors.As(err, &serr) {
		return err
	}

	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return errors.Join(store.ErrAlreadyExists, err)
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return errors.Join(store.ErrConflict, err)
	}
	return err
}

// mapAffected reports ErrNotFound when a targeted write touched no rows.
func mapAffected(n int64, err error) error {
	if err != nil {
		return mapWriteErr(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:                 row.ID,
		Username:           row.Username,
		NormalizedUsername: row.NormalizedUsername,
		Email:              row.Email,
		NormalizedEmail:    row.NormalizedEmail,
		PasswordHash:       row.PasswordHash,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

func mapRole(row gen.Role) domain.Role {
	return domain.Role{
		ID:             row.ID,
		Name:           row.Name,
		NormalizedName: row.NormalizedName,
		Protected:      row.Protected,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func mapResource(row gen.Resource) domain.Resource {
	return domain.Resource{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}

func mapRoleResource(row gen.RoleResource) domain.RoleResource {
	return domain.RoleResource{RoleID: row.RoleID, ResourceID: row.ResourceID}
}

// mapRows converts every row with fn, keeping nil for no rows.
func mapRows[R, D any](rows []R, fn func(R) D) []D {
	if len(rows) == 0 {
		return nil
	}
	out := make([]D, len(rows))
	for i, row := range rows {
		out[i] = fn(row)
	}
	return out
}
