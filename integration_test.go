package tokenauth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	tokenauth "github.com/goliatone/go-tokenauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the full flow against a real database: register an account,
// log in with the credential pair, and resolve the issued token back to
// the subject.
func TestRegisterLoginResolveFlow(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	tokens := newTestTokenService(t, time.Hour)

	provider := tokenauth.NewUserProvider(repo.Users())
	auther := tokenauth.NewAuthenticator(provider, tokens)

	user, err := tokenauth.NewRegisterUserHandler(repo).Execute(ctx, tokenauth.RegisterUserMessage{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEqual(t, "password123", user.PasswordHash)

	token, err := auther.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := auther.ResolveSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestLoginFailuresAfterRegistration(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	tokens := newTestTokenService(t, time.Hour)
	auther := tokenauth.NewAuthenticator(tokenauth.NewUserProvider(repo.Users()), tokens)

	_, err := tokenauth.NewRegisterUserHandler(repo).Execute(ctx, tokenauth.RegisterUserMessage{
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)

	_, wrongPassword := auther.Login(ctx, "alice", "not-the-password")
	_, unknownUser := auther.Login(ctx, "nobody", "password123")

	assert.ErrorIs(t, wrongPassword, tokenauth.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, tokenauth.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestTamperedTokenCannotResolve(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	tokens := newTestTokenService(t, time.Hour)
	auther := tokenauth.NewAuthenticator(tokenauth.NewUserProvider(repo.Users()), tokens)

	_, err := tokenauth.NewRegisterUserHandler(repo).Execute(ctx, tokenauth.RegisterUserMessage{
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)

	token, err := auther.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	// alter the claims segment without re-signing
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	forged := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = auther.ResolveSubject(forged)
	require.Error(t, err)
	assert.True(t, tokenauth.IsTokenError(err))
}
