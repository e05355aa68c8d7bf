// Package locale holds the message catalog used for human readable failure
// descriptions. Message keys are the English texts.
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Each is also the English text.
const (
	DefaultError             = "An unknown failure has occurred."
	DuplicateUserName        = "User name '%s' is already taken."
	InvalidUserName          = "User name '%s' is invalid, can only contain letters, digits or ._@+-"
	DuplicateEmail           = "Email '%s' is already taken."
	InvalidEmail             = "Email '%s' is invalid."
	PasswordTooShort         = "Passwords must be at least %d characters."
	PasswordRequiresDigit    = "Passwords must have at least one digit ('0'-'9')."
	PasswordRequiresLower    = "Passwords must have at least one lowercase ('a'-'z')."
	PasswordRequiresUpper    = "Passwords must have at least one uppercase ('A'-'Z')."
	PasswordRequiresNonAlnum = "Passwords must have at least one non alphanumeric character."
	DuplicateRoleName        = "Role name '%s' is already taken."
	InvalidRoleName          = "Role name '%s' is invalid."
	RoleProtected            = "Role '%s' is protected and cannot be deleted."
	RoleNotFound             = "Role '%s' does not exist."
	UserAlreadyInRole        = "User already in role '%s'."
	UserNotInRole            = "User is not in role '%s'."
	UnknownResource          = "Resource '%s' does not exist."
	UserNotFound             = "The current user does not exist."
)

var chinese = map[string]string{
	DefaultError:             "发生了未知错误。",
	DuplicateUserName:        "用户名 '%s' 已被使用。",
	InvalidUserName:          "用户名 '%s' 无效，只能包含字母、数字或 ._@+-",
	DuplicateEmail:           "邮箱 '%s' 已被使用。",
	InvalidEmail:             "邮箱 '%s' 无效。",
	PasswordTooShort:         "密码长度至少为 %d 个字符。",
	PasswordRequiresDigit:    "密码必须至少包含一个数字 ('0'-'9')。",
	PasswordRequiresLower:    "密码必须至少包含一个小写字母 ('a'-'z')。",
	PasswordRequiresUpper:    "密码必须至少包含一个大写字母 ('A'-'Z')。",
	PasswordRequiresNonAlnum: "密码必须至少包含一个非字母数字字符。",
	DuplicateRoleName:        "角色名 '%s' 已被使用。",
	InvalidRoleName:          "角色名 '%s' 无效。",
	RoleProtected:            "角色 '%s' 受保护，无法删除。",
	RoleNotFound:             "角色 '%s' 不存在。",
	UserAlreadyInRole:        "用户已在角色 '%s' 中。",
	UserNotInRole:            "用户不在角色 '%s' 中。",
	UnknownResource:          "资源 '%s' 不存在。",
	UserNotFound:             "当前用户不存在",
}

// Supported lists the catalog languages, English first.
var Supported = []language.Tag{language.English, language.SimplifiedChinese}

var (
	cat     = build()
	matcher = language.NewMatcher(Supported)
)

func build() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range keys() {
		_ = b.SetString(language.English, key, key)
	}
	for key, msg := range chinese {
		_ = b.SetString(language.SimplifiedChinese, key, msg)
	}
	return b
}

func keys() []string {
	return []string{
		DefaultError, DuplicateUserName, InvalidUserName, DuplicateEmail,
		InvalidEmail, PasswordTooShort, PasswordRequiresDigit, PasswordRequiresLower,
		PasswordRequiresUpper, PasswordRequiresNonAlnum, DuplicateRoleName,
		InvalidRoleName, RoleProtected, RoleNotFound, UserAlreadyInRole,
		UserNotInRole, UnknownResource, UserNotFound,
	}
}

// Match picks the closest supported language for a BCP 47 tag or an
// Accept-Language style list. Unknown input falls back to English.
func Match(s string) language.Tag {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.English
	}
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, i, _ := matcher.Match(tags...)
	return Supported[i]
}

// Printer returns a message printer for tag backed by the catalog.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}
