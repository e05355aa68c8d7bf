package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrConflict      = errors.New("store: conflicting reference")
)

// Store is the root data access interface. Drivers implement this and expose
// sub-repositories per table so a Tx-scoped Store can be passed anywhere a
// Store is expected.
type Store interface {
	Users() Users
	Roles() Roles
	UserRoles() UserRoles
	Resources() Resources
	RoleResources() RoleResources

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction. The transaction is committed when
	// fn returns nil and rolled back otherwise. Calling WithTx on a Tx fails
	// with sql.ErrTxDone, nested transactions are not supported.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByNormalizedUsername is used for uniqueness checks.
	GetUserByNormalizedUsername(ctx context.Context, normalized string) (domain.User, error)

	// GetUserByNormalizedEmail returns the first user with that email.
	GetUserByNormalizedEmail(ctx context.Context, normalized string) (domain.User, error)

	// ListUsers returns all users ordered by username.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ListUsersByIDs returns the users that exist among ids. Unknown ids are
	// skipped, an empty ids returns nothing.
	ListUsersByIDs(ctx context.Context, ids []string) ([]domain.User, error)

	// CreateUser returns ErrAlreadyExists on a duplicate id or normalized username.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser writes username and email (with normalized forms) and bumps updated_at.
	UpdateUser(ctx context.Context, u domain.User) error

	// DeleteUser cascades to user_roles.
	DeleteUser(ctx context.Context, id string) error
}

type Roles interface {
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)
	GetRoleByNormalizedName(ctx context.Context, normalized string) (domain.Role, error)

	// ListAll returns all roles ordered by name.
	ListAll(ctx context.Context) ([]domain.Role, error)

	// ListByIDs returns the roles that exist among ids, ordered by name.
	ListByIDs(ctx context.Context, ids []string) ([]domain.Role, error)

	// CreateRole returns ErrAlreadyExists on a duplicate id or normalized name.
	CreateRole(ctx context.Context, r domain.Role) error

	SetProtected(ctx context.Context, id string, protected bool) error

	// DeleteRole cascades to user_roles and role_resources.
	DeleteRole(ctx context.Context, id string) error
}

type UserRoles interface {
	// ListRoleNamesForUser returns the names of the user's roles, ordered.
	ListRoleNamesForUser(ctx context.Context, userID string) ([]string, error)

	// ListAll returns every membership pair.
	ListAll(ctx context.Context) ([]domain.UserRole, error)

	// AddUserToRole returns ErrAlreadyExists for an existing pair and
	// ErrConflict if either side does not exist.
	AddUserToRole(ctx context.Context, userID, roleID string) error

	// RemoveUserFromRole returns ErrNotFound if the pair does not exist.
	RemoveUserFromRole(ctx context.Context, userID, roleID string) error
}

type Resources interface {
	// ListAll returns all resources ordered by name.
	ListAll(ctx context.Context) ([]domain.Resource, error)

	// ListByIDs returns the resources that exist among ids.
	ListByIDs(ctx context.Context, ids []string) ([]domain.Resource, error)

	// ListByNames returns the resources that exist among names.
	ListByNames(ctx context.Context, names []string) ([]domain.Resource, error)

	// CreateResource returns ErrAlreadyExists on a duplicate id or name.
	CreateResource(ctx context.Context, r domain.Resource) error
}

type RoleResources interface {
	// ListAll returns every grant ordered by role then resource.
	ListAll(ctx context.Context) ([]domain.RoleResource, error)

	// ListRoleIDsByResourceIDs returns the distinct ids of roles granted any
	// of resourceIDs.
	ListRoleIDsByResourceIDs(ctx context.Context, resourceIDs []string) ([]string, error)

	// CreateRoleResource returns ErrAlreadyExists for an existing pair and
	// ErrConflict if the role or resource does not exist.
	CreateRoleResource(ctx context.Context, rr domain.RoleResource) error

	// DeleteByRoleID removes every grant of the role.
	DeleteByRoleID(ctx context.Context, roleID string) error
}
