package tokenauth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by issued tokens: subject, issued-at,
// and expiry. Tokens are self-contained; nothing is stored server side.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// Subject returns the subject claim.
func (c *TokenClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// Expires returns the expiry instant, or the zero time when absent.
func (c *TokenClaims) Expires() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Issued returns the issued-at instant, or the zero time when absent.
func (c *TokenClaims) Issued() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}
