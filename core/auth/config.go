package auth

import (
	"time"

	"github.com/dmitrymomot/authkit/pkg/jwt"
)

// Config provides environment-based configuration for the auth service.
// SigningKey has no default: a missing or too-short key is a fatal startup
// error, never a per-request one.
type Config struct {
	SigningKey string        `env:"AUTH_JWT_SECRET,required"`
	TokenTTL   time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"1h"`
	Issuer     string        `env:"AUTH_JWT_ISSUER" envDefault:"authkit"`
	Audience   string        `env:"AUTH_JWT_AUDIENCE" envDefault:"authkit"`
}

// DefaultConfig returns a Config with sensible defaults.
// Note: SigningKey must be set explicitly - it has no default.
func DefaultConfig() Config {
	return Config{
		TokenTTL: time.Hour,
		Issuer:   "authkit",
		Audience: "authkit",
	}
}

// NewFromConfig creates a Service from configuration. The signing key is
// validated here, so misconfiguration surfaces before the process serves
// traffic.
func NewFromConfig(cfg Config, store Store, opts ...Option) (*Service, error) {
	tokens, err := jwt.NewFromString(cfg.SigningKey)
	if err != nil {
		return nil, err
	}

	configOpts := make([]Option, 0, len(opts)+3)
	if cfg.TokenTTL > 0 {
		configOpts = append(configOpts, WithTokenTTL(cfg.TokenTTL))
	}
	if cfg.Issuer != "" {
		configOpts = append(configOpts, WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		configOpts = append(configOpts, WithAudience(cfg.Audience))
	}
	configOpts = append(configOpts, opts...)

	return New(store, tokens, configOpts...), nil
}
