package identity

import "golang.org/x/text/language"

const DefaultAllowedUserNameCharacters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-._@+"

type PasswordOptions struct {
	RequiredLength         int
	RequireDigit           bool
	RequireLowercase       bool
	RequireUppercase       bool
	RequireNonAlphanumeric bool
}

type UserOptions struct {
	// AllowedUserNameCharacters empty means any character is allowed.
	AllowedUserNameCharacters string
	RequireUniqueEmail        bool
}

type Options struct {
	Password PasswordOptions
	User     UserOptions
	Locale   language.Tag
}

// DefaultOptions returns the validation rules used unless configured otherwise.
func DefaultOptions() Options {
	return Options{
		Password: PasswordOptions{
			RequiredLength:   8,
			RequireDigit:     true,
			RequireLowercase: true,
			RequireUppercase: true,
		},
		User: UserOptions{
			AllowedUserNameCharacters: DefaultAllowedUserNameCharacters,
			RequireUniqueEmail:        true,
		},
		Locale: language.English,
	}
}
