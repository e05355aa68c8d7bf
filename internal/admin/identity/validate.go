package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store"
	"golang.org/x/text/cases"
)

// Normalize returns the lookup form of a username, email or role name.
func Normalize(s string) string {
	// Casers hold state and are not safe for concurrent use.
	return cases.Fold().String(strings.TrimSpace(s))
}

// validateUser checks username and email rules, including uniqueness
// against every user other than u itself.
func (m *Manager) validateUser(ctx context.Context, u *domain.User) ([]Error, error) {
	var errs []Error

	if m.validUserName(u.Username) {
		owner, err := m.store.Users().GetUserByNormalizedUsername(ctx, Normalize(u.Username))
		switch {
		case err == nil && owner.ID != u.ID:
			errs = append(errs, m.describe.DuplicateUserName(u.Username))
		case err != nil && !errors.Is(err, store.ErrNotFound):
			return nil, err
		}
	} else {
		errs = append(errs, m.describe.InvalidUserName(u.Username))
	}

	if m.validate.Var(u.Email, "required,email,max=256") != nil {
		errs = append(errs, m.describe.InvalidEmail(u.Email))
	} else if m.opts.User.RequireUniqueEmail {
		owner, err := m.store.Users().GetUserByNormalizedEmail(ctx, Normalize(u.Email))
		switch {
		case err == nil && owner.ID != u.ID:
			errs = append(errs, m.describe.DuplicateEmail(u.Email))
		case err != nil && !errors.Is(err, store.ErrNotFound):
			return nil, err
		}
	}

	return errs, nil
}

func (m *Manager) validUserName(name string) bool {
	if m.validate.Var(name, "required,max=64") != nil {
		return false
	}
	allowed := m.opts.User.AllowedUserNameCharacters
	if allowed == "" {
		return true
	}
	for _, r := range name {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
	}
	return true
}

func (m *Manager) validatePassword(password string) []Error {
	opts := m.opts.Password
	var errs []Error

	if len([]rune(password)) < opts.RequiredLength {
		errs = append(errs, m.describe.PasswordTooShort(opts.RequiredLength))
	}

	// Character classes are ASCII only. Any other rune counts as
	// non-alphanumeric.
	var digit, lower, upper, other bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		default:
			other = true
		}
	}

	if opts.RequireNonAlphanumeric && !other {
		errs = append(errs, m.describe.PasswordRequiresNonAlphanumeric())
	}
	if opts.RequireDigit && !digit {
		errs = append(errs, m.describe.PasswordRequiresDigit())
	}
	if opts.RequireLowercase && !lower {
		errs = append(errs, m.describe.PasswordRequiresLower())
	}
	if opts.RequireUppercase && !upper {
		errs = append(errs, m.describe.PasswordRequiresUpper())
	}
	return errs
}

// validateRole checks the role name and its uniqueness against other roles.
func (m *Manager) validateRole(ctx context.Context, r *domain.Role) ([]Error, error) {
	if m.validate.Var(strings.TrimSpace(r.Name), "required,max=64") != nil {
		return []Error{m.describe.InvalidRoleName(r.Name)}, nil
	}

	owner, err := m.store.Roles().GetRoleByNormalizedName(ctx, Normalize(r.Name))
	switch {
	case err == nil && owner.ID != r.ID:
		return []Error{m.describe.DuplicateRoleName(r.Name)}, nil
	case err != nil && !errors.Is(err, store.ErrNotFound):
		return nil, err
	}
	return nil, nil
}
