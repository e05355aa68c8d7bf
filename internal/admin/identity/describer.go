package identity

import (
	"github.com/aussiebroadwan/roleadmin/internal/admin/locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Describer builds localized Errors.
type Describer struct {
	p *message.Printer
}

// NewDescriber returns a Describer for tag.
func NewDescriber(tag language.Tag) Describer {
	return Describer{p: locale.Printer(tag)}
}

func (d Describer) DefaultError() Error {
	return Error{Code: "DefaultError", Description: d.p.Sprintf(locale.DefaultError)}
}

func (d Describer) DuplicateUserName(name string) Error {
	return Error{Code: "DuplicateUserName", Description: d.p.Sprintf(locale.DuplicateUserName, name)}
}

func (d Describer) InvalidUserName(name string) Error {
	return Error{Code: "InvalidUserName", Description: d.p.Sprintf(locale.InvalidUserName, name)}
}

func (d Describer) DuplicateEmail(email string) Error {
	return Error{Code: "DuplicateEmail", Description: d.p.Sprintf(locale.DuplicateEmail, email)}
}

func (d Describer) InvalidEmail(email string) Error {
	return Error{Code: "InvalidEmail", Description: d.p.Sprintf(locale.InvalidEmail, email)}
}

func (d Describer) PasswordTooShort(length int) Error {
	return Error{Code: "PasswordTooShort", Description: d.p.Sprintf(locale.PasswordTooShort, length)}
}

func (d Describer) PasswordRequiresDigit() Error {
	return Error{Code: "PasswordRequiresDigit", Description: d.p.Sprintf(locale.PasswordRequiresDigit)}
}

func (d Describer) PasswordRequiresLower() Error {
	return Error{Code: "PasswordRequiresLower", Description: d.p.Sprintf(locale.PasswordRequiresLower)}
}

func (d Describer) PasswordRequiresUpper() Error {
	return Error{Code: "PasswordRequiresUpper", Description: d.p.Sprintf(locale.PasswordRequiresUpper)}
}

func (d Describer) PasswordRequiresNonAlphanumeric() Error {
	return Error{Code: "PasswordRequiresNonAlphanumeric", Description: d.p.Sprintf(locale.PasswordRequiresNonAlnum)}
}

func (d Describer) DuplicateRoleName(name string) Error {
	return Error{Code: "DuplicateRoleName", Description: d.p.Sprintf(locale.DuplicateRoleName, name)}
}

func (d Describer) InvalidRoleName(name string) Error {
	return Error{Code: "InvalidRoleName", Description: d.p.Sprintf(locale.InvalidRoleName, name)}
}

func (d Describer) RoleProtected(name string) Error {
	return Error{Code: "RoleProtected", Description: d.p.Sprintf(locale.RoleProtected, name)}
}

func (d Describer) RoleNotFound(name string) Error {
	return Error{Code: "RoleNotFound", Description: d.p.Sprintf(locale.RoleNotFound, name)}
}

func (d Describer) UserAlreadyInRole(role string) Error {
	return Error{Code: "UserAlreadyInRole", Description: d.p.Sprintf(locale.UserAlreadyInRole, role)}
}

func (d Describer) UserNotInRole(role string) Error {
	return Error{Code: "UserNotInRole", Description: d.p.Sprintf(locale.UserNotInRole, role)}
}

func (d Describer) UnknownResource(id string) Error {
	return Error{Code: "UnknownResource", Description: d.p.Sprintf(locale.UnknownResource, id)}
}

func (d Describer) UserNotFound() Error {
	return Error{Code: "UserNotFound", Description: d.p.Sprintf(locale.UserNotFound)}
}
