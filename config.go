package tokenauth

import (
	"os"
	"strconv"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
)

// BaseConfig is the concrete Config used by wiring code. Zero TTL means
// "unset" and takes the default; an explicitly negative TTL, like a missing
// or weak secret, is a fatal startup error. There is intentionally no
// fallback secret: a process without usable key material must not serve.
type BaseConfig struct {
	SigningSecret   string
	TokenTTLSeconds int
	AuthScheme      string
	ContextKey      string
	TokenLookup     string
	SeedUsername    string
	SeedEmail       string
	SeedPassword    string
}

var _ Config = (*BaseConfig)(nil)

// NewBaseConfig returns a config with transport defaults applied. The
// signing secret has no default and must be supplied.
func NewBaseConfig(secret string) *BaseConfig {
	return &BaseConfig{
		SigningSecret:   secret,
		TokenTTLSeconds: int(DefaultTokenTTL / time.Second),
		AuthScheme:      "Bearer",
		ContextKey:      "user",
		TokenLookup:     "header:" + router.HeaderAuthorization,
	}
}

// ConfigFromEnv builds a BaseConfig from the conventional environment
// variables. Callers still need to Validate before use.
func ConfigFromEnv() *BaseConfig {
	cfg := NewBaseConfig(os.Getenv("JWT_SECRET"))

	if raw := os.Getenv("JWT_TTL_SECONDS"); raw != "" {
		if ttl, err := strconv.Atoi(raw); err == nil {
			cfg.TokenTTLSeconds = ttl
		}
	}

	cfg.SeedUsername = os.Getenv("INIT_USERNAME")
	cfg.SeedEmail = os.Getenv("INIT_EMAIL")
	cfg.SeedPassword = os.Getenv("INIT_PASSWORD")

	return cfg
}

// Validate reports the first fatal configuration error: callers are expected
// to refuse to start on any non-nil result.
func (c *BaseConfig) Validate() error {
	if _, err := DeriveSigningKey(c.SigningSecret); err != nil {
		return err
	}

	if c.TokenTTLSeconds < 0 {
		return ErrInvalidTokenTTL.Clone().WithMetadata(map[string]any{
			"ttl_seconds": c.TokenTTLSeconds,
		})
	}

	if c.SeedUsername != "" && c.SeedPassword == "" {
		return errors.New("seed identity configured without a password", errors.CategoryBadInput).
			WithCode(errors.CodeBadRequest)
	}

	return nil
}

func (c *BaseConfig) GetSigningSecret() string {
	return c.SigningSecret
}

func (c *BaseConfig) GetTokenTTL() time.Duration {
	if c.TokenTTLSeconds == 0 {
		return DefaultTokenTTL
	}
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

func (c *BaseConfig) GetAuthScheme() string {
	if c.AuthScheme == "" {
		return "Bearer"
	}
	return c.AuthScheme
}

func (c *BaseConfig) GetContextKey() string {
	if c.ContextKey == "" {
		return "user"
	}
	return c.ContextKey
}

func (c *BaseConfig) GetTokenLookup() string {
	if c.TokenLookup == "" {
		return "header:" + router.HeaderAuthorization
	}
	return c.TokenLookup
}

func (c *BaseConfig) GetSeedUsername() string {
	return c.SeedUsername
}

func (c *BaseConfig) GetSeedEmail() string {
	return c.SeedEmail
}

func (c *BaseConfig) GetSeedPassword() string {
	return c.SeedPassword
}
