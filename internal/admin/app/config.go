package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/roleadmin/pkg/httpx"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseFile string `envconfig:"ADMIN_DATABASE_FILE" default:"admin.db"` // path to SQLite database file
	PepperFile   string `envconfig:"ADMIN_PEPPER_FILE" default:"pepper"`     // created on first start when missing

	// Tokens are issued by an external identity provider. Exactly one of
	// JWKSFile and JWKSURL must be set.
	Issuer      string        `envconfig:"ADMIN_ISSUER"`                     // empty accepts any issuer
	Audience    []string      `envconfig:"ADMIN_AUDIENCE"`                   // comma separated, empty accepts any
	JWKSFile    string        `envconfig:"ADMIN_JWKS_FILE"`                  // local JWKS document
	JWKSURL     string        `envconfig:"ADMIN_JWKS_URL"`                   // remote JWKS endpoint
	JWKSRefresh time.Duration `envconfig:"ADMIN_JWKS_REFRESH" default:"5m"`  // 0 disables reloading
	TokenLeeway time.Duration `envconfig:"ADMIN_TOKEN_LEEWAY" default:"30s"` // clock skew allowance

	Locale            string   `envconfig:"ADMIN_LOCALE" default:"en"`             // language of failure messages
	Resources         []string `envconfig:"ADMIN_RESOURCES"`                       // seeded at startup
	ProtectedRoles    []string `envconfig:"ADMIN_PROTECTED_ROLES" default:"admin"` // seeded at startup, never deletable
	PasswordMinLength int      `envconfig:"ADMIN_PASSWORD_MIN_LENGTH" default:"8"` // minimum password length
	PasswordNonAlnum  bool     `envconfig:"ADMIN_PASSWORD_REQUIRE_NON_ALNUM"`      // require a symbol
	ReadRateLimit     int      `envconfig:"ADMIN_READ_RATE_LIMIT" default:"300"`   // read requests per minute per user
	WriteRateLimit    int      `envconfig:"ADMIN_WRITE_RATE_LIMIT" default:"60"`   // write requests per minute per user

	Env                 string        `envconfig:"ENV" default:"dev"`                   // dev, staging, prod
	LogLevel            string        `envconfig:"LOG_LEVEL" default:"info"`            // debug, info, warn, error
	LogFormat           string        `envconfig:"LOG_FORMAT" default:"json"`           // json, text
	Port                int           `envconfig:"PORT" default:"8080"`                 // HTTP server port
	ShutdownGracePeriod time.Duration `envconfig:"SHUTDOWN_GRACE_PERIOD" default:"10s"` // graceful shutdown timeout
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch {
	case c.JWKSFile == "" && c.JWKSURL == "":
		errs = append(errs, errors.New("one of ADMIN_JWKS_FILE or ADMIN_JWKS_URL is required"))
	case c.JWKSFile != "" && c.JWKSURL != "":
		errs = append(errs, errors.New("ADMIN_JWKS_FILE and ADMIN_JWKS_URL are mutually exclusive"))
	}
	if c.PasswordMinLength < 1 {
		errs = append(errs, errors.New("ADMIN_PASSWORD_MIN_LENGTH must be at least 1"))
	}
	if c.ReadRateLimit < 1 || c.WriteRateLimit < 1 {
		errs = append(errs, errors.New("rate limits must be positive"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	return errors.Join(errs...)
}

func (c Config) readLimit() httpx.RateLimitConfig {
	return perMinute(c.ReadRateLimit)
}

func (c Config) writeLimit() httpx.RateLimitConfig {
	return perMinute(c.WriteRateLimit)
}

func perMinute(n int) httpx.RateLimitConfig {
	return httpx.RateLimitConfig{RequestsPerWindow: n, Window: time.Minute, Burst: max(1, n/5)}
}
