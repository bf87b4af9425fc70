package tokenauth

import (
	"context"

	"github.com/goliatone/go-errors"
)

// Auther orchestrates the credential store, the password hasher, and the
// token service to answer login and token resolution requests.
type Auther struct {
	provider IdentityProvider
	tokens   TokenService
	logger   Logger
}

var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, tokens TokenService) *Auther {
	return &Auther{
		provider: provider,
		tokens:   tokens,
		logger:   defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokens
}

// Login verifies the credential pair and issues a bearer token for the
// account's username. Every credential failure collapses into
// ErrInvalidCredentials: an unknown username and a wrong password are
// indistinguishable to the caller.
func (s *Auther) Login(ctx context.Context, identifier, password string) (string, error) {
	identity, err := s.provider.VerifyIdentity(ctx, identifier, password)
	if err != nil {
		if IsCredentialError(err) || isAbsent(err) {
			s.logger.Debug("Login rejected for %s", identifier)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Login verify identity error: %s", err)
		return "", errors.Wrap(err, errors.CategoryInternal, "login failed")
	}

	token, err := s.tokens.Issue(identity.Username())
	if err != nil {
		s.logger.Error("Login token issue error: %s", err)
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to issue token")
	}

	return token, nil
}

// ResolveSubject validates a presented token and returns the authenticated
// subject. Any token error means the request is unauthenticated; callers
// decide whether the endpoint requires authentication.
func (s *Auther) ResolveSubject(token string) (string, error) {
	return s.tokens.Validate(token)
}
