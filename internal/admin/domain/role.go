package domain

import "time"

type Role struct {
	ID             string
	Name           string
	NormalizedName string
	Protected      bool // seeded roles that may not be deleted
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RoleModel is a role with the ids of the resources it grants.
type RoleModel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ResourceIDs []string `json:"resource_ids"`
}
