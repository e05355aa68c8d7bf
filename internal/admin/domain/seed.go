package domain

// SeedData describes what must exist before the service takes traffic.
type SeedData struct {
	Resources      []string // resource names
	ProtectedRoles []string // role names that can never be deleted
}
