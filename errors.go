package tokenauth

import (
	"github.com/goliatone/go-errors"
)

// Text codes surfaced in rich errors so API clients and logs can key off a
// stable identifier instead of the human message.
const (
	TextCodeInvalidCreds     = "INVALID_CREDENTIALS"
	TextCodeTokenExpired     = "TOKEN_EXPIRED"
	TextCodeTokenSignature   = "TOKEN_BAD_SIGNATURE"
	TextCodeTokenMalformed   = "TOKEN_MALFORMED"
	TextCodeIdentityConflict = "IDENTITY_CONFLICT"
	TextCodeWeakSigningKey   = "WEAK_SIGNING_KEY"
	TextCodeInvalidTokenTTL  = "INVALID_TOKEN_TTL"
)

// ErrNoEmptyString is returned when a required secret string is blank.
var ErrNoEmptyString = errors.New("value must not be an empty string", errors.CategoryBadInput).
	WithCode(errors.CodeBadRequest)

// ErrMismatchedHashAndPassword is the uniform verification failure: callers
// cannot tell a wrong password apart from a missing account.
var ErrMismatchedHashAndPassword = errors.New("the credentials provided are invalid", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeUnauthorized)

// ErrInvalidCredentials is what Login surfaces for every credential failure.
// It deliberately carries no detail about which check failed.
var ErrInvalidCredentials = errors.New("the credentials provided are invalid", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned when a token fails validation past its expiry.
var ErrTokenExpired = errors.New("authentication token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenSignature is returned when the HMAC signature does not verify.
var ErrTokenSignature = errors.New("authentication token signature is invalid", errors.CategoryAuth).
	WithTextCode(TextCodeTokenSignature).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned when a token cannot be parsed at all.
var ErrTokenMalformed = errors.New("authentication token is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrIdentityConflict is returned when a registration collides with an
// existing username or email. Unlike credential failures this is surfaced
// distinctly; it does not leak authentication-relevant information.
var ErrIdentityConflict = errors.New("an identity with that username or email already exists", errors.CategoryConflict).
	WithTextCode(TextCodeIdentityConflict).
	WithCode(errors.CodeConflict)

// ErrWeakSigningKey is a fatal configuration error: the process must not
// serve traffic with key material below the HMAC-SHA256 minimum.
var ErrWeakSigningKey = errors.New("signing secret is too short for HMAC-SHA256", errors.CategoryBadInput).
	WithTextCode(TextCodeWeakSigningKey).
	WithCode(errors.CodeBadRequest)

// ErrInvalidTokenTTL is a fatal configuration error for a non-positive TTL.
var ErrInvalidTokenTTL = errors.New("token TTL must be positive", errors.CategoryBadInput).
	WithTextCode(TextCodeInvalidTokenTTL).
	WithCode(errors.CodeBadRequest)

// IsCredentialError reports whether err is the uniform credential failure.
func IsCredentialError(err error) bool {
	if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrMismatchedHashAndPassword) {
		return true
	}
	return hasTextCode(err, TextCodeInvalidCreds)
}

// IsTokenError reports whether err belongs to the token failure taxonomy.
// The three classes stay distinguishable internally for diagnostics; at the
// transport boundary they all collapse to a single unauthorized response.
func IsTokenError(err error) bool {
	if errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenSignature) ||
		errors.Is(err, ErrTokenMalformed) {
		return true
	}
	return hasTextCode(err, TextCodeTokenExpired, TextCodeTokenSignature, TextCodeTokenMalformed)
}

// IsConflictError reports whether err is a registration uniqueness conflict.
func IsConflictError(err error) bool {
	if errors.Is(err, ErrIdentityConflict) {
		return true
	}
	return hasTextCode(err, TextCodeIdentityConflict)
}

// hasTextCode matches cloned or wrapped rich errors that no longer share
// identity with the package level vars.
func hasTextCode(err error, codes ...string) bool {
	var rich *errors.Error
	if !errors.As(err, &rich) {
		return false
	}
	for _, code := range codes {
		if rich.TextCode == code {
			return true
		}
	}
	return false
}
