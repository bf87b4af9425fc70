package tokenauth_test

import (
	"context"

	tokenauth "github.com/goliatone/go-tokenauth"
	"github.com/stretchr/testify/mock"
)

// MockIdentityProvider implements tokenauth.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, identifier, password string) (tokenauth.Identity, error) {
	args := m.Called(ctx, identifier, password)
	if identity, ok := args.Get(0).(tokenauth.Identity); ok {
		return identity, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByIdentifier(ctx context.Context, identifier string) (tokenauth.Identity, error) {
	args := m.Called(ctx, identifier)
	if identity, ok := args.Get(0).(tokenauth.Identity); ok {
		return identity, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTokenService implements tokenauth.TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(subject string) (string, error) {
	args := m.Called(subject)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

// MockCredentialStore implements tokenauth.CredentialStore
type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) GetByUsername(ctx context.Context, username string) (*tokenauth.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*tokenauth.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCredentialStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockCredentialStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCredentialStore) Register(ctx context.Context, user *tokenauth.User) (*tokenauth.User, error) {
	args := m.Called(ctx, user)
	if created, ok := args.Get(0).(*tokenauth.User); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

// TestIdentity is a plain value implementation of tokenauth.Identity
type TestIdentity struct {
	id       string
	username string
	email    string
}

func (t TestIdentity) ID() string       { return t.id }
func (t TestIdentity) Username() string { return t.username }
func (t TestIdentity) Email() string    { return t.email }
