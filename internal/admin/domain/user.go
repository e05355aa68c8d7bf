package domain

import "time"

type User struct {
	ID                 string
	Username           string
	NormalizedUsername string
	Email              string
	NormalizedEmail    string
	PasswordHash       string // argon2 encoded
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// UserModel is the editable view of a user used by the assignment service.
// RoleIDs is the complete desired role set on update.
type UserModel struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	RoleIDs  []string `json:"role_ids"`
}
