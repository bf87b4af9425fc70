package tokenauth_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	tokenauth "github.com/goliatone/go-tokenauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyIdentity(t *testing.T) {
	ctx := context.Background()

	hash, err := tokenauth.HashPassword("password123")
	require.NoError(t, err)

	user := &tokenauth.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}

	store := new(MockCredentialStore)
	store.On("GetByUsername", ctx, "alice").Return(user, nil)

	provider := tokenauth.NewUserProvider(store)

	identity, err := provider.VerifyIdentity(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username())
	assert.Equal(t, "alice@example.com", identity.Email())
}

func TestVerifyIdentityWrongPassword(t *testing.T) {
	ctx := context.Background()

	hash, err := tokenauth.HashPassword("password123")
	require.NoError(t, err)

	store := new(MockCredentialStore)
	store.On("GetByUsername", ctx, "alice").
		Return(&tokenauth.User{Username: "alice", PasswordHash: hash}, nil)

	provider := tokenauth.NewUserProvider(store)

	identity, err := provider.VerifyIdentity(ctx, "alice", "wrong-password")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, tokenauth.ErrMismatchedHashAndPassword)
}

func TestVerifyIdentityUnknownUser(t *testing.T) {
	ctx := context.Background()

	store := new(MockCredentialStore)
	store.On("GetByUsername", ctx, "ghost").
		Return(nil, repository.NewRecordNotFound())

	provider := tokenauth.NewUserProvider(store)

	// an unknown account yields the same error as a wrong password
	identity, err := provider.VerifyIdentity(ctx, "ghost", "whatever")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, tokenauth.ErrMismatchedHashAndPassword)
}

func TestVerifyIdentityEmptyPassword(t *testing.T) {
	ctx := context.Background()
	store := new(MockCredentialStore)

	provider := tokenauth.NewUserProvider(store)

	identity, err := provider.VerifyIdentity(ctx, "alice", "")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, tokenauth.ErrMismatchedHashAndPassword)
	store.AssertNumberOfCalls(t, "GetByUsername", 0)
}

func TestVerifyIdentityStoreFailure(t *testing.T) {
	ctx := context.Background()

	store := new(MockCredentialStore)
	store.On("GetByUsername", ctx, "alice").
		Return(nil, goerrors.New("connection refused", goerrors.CategoryInternal))

	provider := tokenauth.NewUserProvider(store)

	identity, err := provider.VerifyIdentity(ctx, "alice", "password123")
	assert.Nil(t, identity)
	require.Error(t, err)
	assert.False(t, tokenauth.IsCredentialError(err))
}

func TestVerifyIdentityUnknownUserAgainstRealStore(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := tokenauth.NewRegisterUserHandler(repo).Execute(ctx, tokenauth.RegisterUserMessage{
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)

	provider := tokenauth.NewUserProvider(repo.Users())

	// the repository's own record-not-found error must collapse into the
	// uniform credential failure, same as a wrong password
	_, unknownErr := provider.VerifyIdentity(ctx, "ghost", "whatever")
	_, wrongErr := provider.VerifyIdentity(ctx, "alice", "not-the-password")

	assert.ErrorIs(t, unknownErr, tokenauth.ErrMismatchedHashAndPassword)
	assert.ErrorIs(t, wrongErr, tokenauth.ErrMismatchedHashAndPassword)
	assert.True(t, tokenauth.IsCredentialError(unknownErr))
	assert.Equal(t, wrongErr.Error(), unknownErr.Error())
}

func TestFindIdentityByIdentifier(t *testing.T) {
	ctx := context.Background()

	store := new(MockCredentialStore)
	store.On("GetByUsername", ctx, "alice").
		Return(&tokenauth.User{Username: "alice"}, nil)
	store.On("GetByUsername", ctx, "ghost").
		Return(nil, repository.NewRecordNotFound())

	provider := tokenauth.NewUserProvider(store)

	identity, err := provider.FindIdentityByIdentifier(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username())

	identity, err = provider.FindIdentityByIdentifier(ctx, "ghost")
	assert.Nil(t, identity)
	assert.True(t, goerrors.IsNotFound(err))
}
