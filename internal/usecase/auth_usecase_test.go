package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gormrepo "foodfinder/internal/adapter/repository"
	"foodfinder/internal/domain/repository"
	"foodfinder/internal/infrastructure/token"
	"foodfinder/internal/usecase"
	"foodfinder/pkg/errors"
)

type authEnv struct {
	uc        *usecase.AuthUseCase
	tokens    *token.Manager
	tokenRepo repository.TokenRepository
}

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()

	db := newTestDB(t)
	tokens := token.NewManager("test-secret", time.Hour, 7*24*time.Hour)
	userRepo := gormrepo.NewGormUserRepository(db)
	tokenRepo := gormrepo.NewGormTokenRepository(db)

	return &authEnv{
		uc:        usecase.NewAuthUseCase(userRepo, tokenRepo, tokens),
		tokens:    tokens,
		tokenRepo: tokenRepo,
	}
}

func registerInput(username string) usecase.RegisterInput {
	return usecase.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "correct horse battery",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	registered, err := env.uc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)
	assert.NotEmpty(t, registered.User.ID)
	assert.NotEmpty(t, registered.Token)
	assert.NotEmpty(t, registered.RefreshToken)
	assert.NotEqual(t, "correct horse battery", registered.User.PasswordHash)

	loggedIn, err := env.uc.Login(ctx, "alice", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, err := env.uc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	dup := registerInput("alice")
	dup.Email = "other@example.com"
	_, err = env.uc.Register(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, err := env.uc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	dup := registerInput("bob")
	dup.Email = "alice@example.com"
	_, err = env.uc.Register(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestLoginWrongPassword(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, err := env.uc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	_, err = env.uc.Login(ctx, "alice", "wrong password")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginUnknownUser(t *testing.T) {
	env := newAuthEnv(t)

	_, err := env.uc.Login(context.Background(), "nobody", "whatever")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestRegisterOrLogin(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	// First call registers.
	first, err := env.uc.RegisterOrLogin(ctx, registerInput("alice"))
	require.NoError(t, err)

	// Second call with the same credentials logs in.
	second, err := env.uc.RegisterOrLogin(ctx, registerInput("alice"))
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)

	// Existing account with the wrong password is rejected, not re-registered.
	bad := registerInput("alice")
	bad.Password = "wrong password"
	_, err = env.uc.RegisterOrLogin(ctx, bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestCheckUserExists(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	exists, err := env.uc.CheckUserExists(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = env.uc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	exists, err = env.uc.CheckUserExists(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRefreshToken(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	registered, err := env.uc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	refreshed, err := env.uc.RefreshToken(ctx, registered.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.Token)
	assert.NotEmpty(t, refreshed.RefreshToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	registered, err := env.uc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	_, err = env.uc.RefreshToken(ctx, registered.Token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLogoutRevokesBothTokens(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	registered, err := env.uc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	require.NoError(t, env.uc.Logout(ctx, registered.Token, registered.RefreshToken))

	accessClaims, err := env.tokens.Verify(registered.Token, token.TypeAccess)
	require.NoError(t, err)
	revoked, err := env.tokenRepo.IsRevoked(ctx, accessClaims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	refreshClaims, err := env.tokens.Verify(registered.RefreshToken, token.TypeRefresh)
	require.NoError(t, err)
	revoked, err = env.tokenRepo.IsRevoked(ctx, refreshClaims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	// The blacklisted refresh token cannot mint a new pair.
	_, err = env.uc.RefreshToken(ctx, registered.RefreshToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLogoutWithoutRefreshToken(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	registered, err := env.uc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	require.NoError(t, env.uc.Logout(ctx, registered.Token, ""))

	// Refresh half stays usable when it was not handed over.
	_, err = env.uc.RefreshToken(ctx, registered.RefreshToken)
	assert.NoError(t, err)
}

func TestLogoutIsIdempotent(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	registered, err := env.uc.Register(ctx, registerInput("alice"))
	require.NoError(t, err)

	require.NoError(t, env.uc.Logout(ctx, registered.Token, registered.RefreshToken))
	require.NoError(t, env.uc.Logout(ctx, registered.Token, registered.RefreshToken))
}
