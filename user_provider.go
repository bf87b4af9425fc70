package tokenauth

import (
	"context"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
)

// UserProvider adapts the credential store into an IdentityProvider.
type UserProvider struct {
	store  CredentialStore
	logger Logger
}

var _ IdentityProvider = (*UserProvider)(nil)

// NewUserProvider will create a new UserProvider
func NewUserProvider(store CredentialStore) *UserProvider {
	return &UserProvider{
		store:  store,
		logger: defLogger{},
	}
}

func (u *UserProvider) WithLogger(l Logger) *UserProvider {
	if l != nil {
		u.logger = l
	}
	return u
}

// VerifyIdentity will find the user, compare the password against the stored
// hash, and return the identity. A missing account and a failed comparison
// both yield ErrMismatchedHashAndPassword so the caller cannot enumerate
// usernames. The raw password is never logged.
func (u *UserProvider) VerifyIdentity(ctx context.Context, identifier, password string) (Identity, error) {
	if password == "" {
		return nil, ErrMismatchedHashAndPassword
	}

	user, err := u.store.GetByUsername(ctx, identifier)
	if err != nil {
		if isAbsent(err) {
			return nil, ErrMismatchedHashAndPassword
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		return nil, err
	}

	return NewIdentityFromUser(user), nil
}

// FindIdentityByIdentifier retrieves an identity without verifying a password.
func (u *UserProvider) FindIdentityByIdentifier(ctx context.Context, identifier string) (Identity, error) {
	user, err := u.store.GetByUsername(ctx, identifier)
	if err != nil {
		if isAbsent(err) {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user")
	}

	return NewIdentityFromUser(user), nil
}

// isAbsent recognizes both the generic not-found category and the
// repository layer's own record-not-found class, which carries a
// database-specific category that errors.IsNotFound does not match.
func isAbsent(err error) bool {
	return errors.IsNotFound(err) || repository.IsRecordNotFound(err)
}
