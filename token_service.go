package tokenauth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// DefaultTokenTTL matches the conventional one hour access token lifetime.
const DefaultTokenTTL = 3600 * time.Second

// TokenServiceImpl implements the TokenService interface using HS256 JWTs.
// The signing key is read-only after construction, so a single instance is
// safe for unsynchronized concurrent use.
type TokenServiceImpl struct {
	signingKey SigningKey
	ttl        time.Duration
	logger     Logger
}

var _ TokenService = (*TokenServiceImpl)(nil)

// NewTokenService creates a TokenService. An undersized key or non-positive
// TTL is a configuration error: fail at startup, not per call.
func NewTokenService(signingKey SigningKey, ttl time.Duration, logger Logger) (*TokenServiceImpl, error) {
	if len(signingKey) < MinSigningKeySize {
		return nil, ErrWeakSigningKey
	}

	if ttl <= 0 {
		return nil, ErrInvalidTokenTTL.Clone().WithMetadata(map[string]any{
			"ttl": ttl.String(),
		})
	}

	if logger == nil {
		logger = defLogger{}
	}

	return &TokenServiceImpl{
		signingKey: signingKey,
		ttl:        ttl,
		logger:     logger,
	}, nil
}

// NewTokenServiceFromConfig derives the signing key from the configured
// secret and builds a TokenService with the configured TTL.
func NewTokenServiceFromConfig(cfg Config, logger Logger) (*TokenServiceImpl, error) {
	key, err := DeriveSigningKey(cfg.GetSigningSecret())
	if err != nil {
		return nil, err
	}
	return NewTokenService(key, cfg.GetTokenTTL(), logger)
}

// TTL returns the configured token time to live.
func (ts *TokenServiceImpl) TTL() time.Duration {
	return ts.ttl
}

// Issue creates a signed token asserting subject, valid from now until
// now+TTL, serialized to the compact JWT form.
func (ts *TokenServiceImpl) Issue(subject string) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("token subject must not be empty", errors.CategoryBadInput).
			WithCode(errors.CodeBadRequest)
	}

	now := time.Now()
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString([]byte(ts.signingKey))
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign token")
	}

	return signedString, nil
}

// Validate parses a presented token, checks the HMAC signature against the
// signing key and the embedded time bounds, and returns the subject. The
// failure classes stay distinguishable for diagnostics; callers at the
// system boundary must collapse them into one unauthorized response.
func (ts *TokenServiceImpl) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("token validate rejected unexpected signing method: %v", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(ts.signingKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenSignature
		default:
			return "", errors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
				WithTextCode(ErrTokenMalformed.TextCode)
		}
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		ts.logger.Error("token validate could not decode claims")
		return "", ErrTokenMalformed
	}

	subject := claims.Subject()
	if subject == "" {
		return "", ErrTokenMalformed
	}

	return subject, nil
}
