package adminsdk

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// ValidationErrorResponse is returned with 400 when a request body fails
// validation.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Users
// ============================================================================

// User is a user with the ids of the roles they hold.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	RoleIDs  []string `json:"role_ids"`
}

type ListUsersResponse struct {
	Users []User `json:"users"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,max=256"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest replaces the user's name, email and complete role set.
type UpdateUserRequest struct {
	Username string   `json:"username" validate:"required,max=64"`
	Email    string   `json:"email" validate:"required,max=256"`
	RoleIDs  []string `json:"role_ids" validate:"dive,required"`
}

// ============================================================================
// Roles
// ============================================================================

// Role is a role with the ids of the resources it grants.
type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ResourceIDs []string `json:"resource_ids"`
}

type ListRolesResponse struct {
	Roles []Role `json:"roles"`
}

type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required,max=64"`
	ResourceIDs []string `json:"resource_ids" validate:"dive,required"`
}

type SetRoleResourcesRequest struct {
	ResourceIDs []string `json:"resource_ids" validate:"dive,required"`
}

// LookupRolesResponse holds the comma separated names of the matching roles.
type LookupRolesResponse struct {
	Roles string `json:"roles"`
}

// ============================================================================
// Resources
// ============================================================================

type Resource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListResourcesResponse struct {
	Resources []Resource `json:"resources"`
}

// ============================================================================
// Health
// ============================================================================

type HealthChecks struct {
	Database string `json:"database"`
	Keys     string `json:"keys"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
