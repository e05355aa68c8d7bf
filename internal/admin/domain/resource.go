package domain

import "time"

// Resource is a permission-bearing thing a role can be granted. Resources
// are seeded at startup and read-only afterwards.
type Resource struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// RoleResource grants a resource to a role. A (RoleID, ResourceID) pair
// exists at most once.
type RoleResource struct {
	RoleID     string
	ResourceID string
}

// UserRole places a user in a role.
type UserRole struct {
	UserID string
	RoleID string
}
