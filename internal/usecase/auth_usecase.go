package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"foodfinder/internal/domain/entity"
	"foodfinder/internal/domain/repository"
	"foodfinder/internal/infrastructure/token"
	"foodfinder/pkg/errors"
	"foodfinder/pkg/logger"
)

type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	tokens    *token.Manager
}

func NewAuthUseCase(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, tokens *token.Manager) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type AuthResult struct {
	User         *entity.User
	Token        string
	RefreshToken string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if existing, err := uc.userRepo.GetByUsername(ctx, input.Username); err == nil && existing != nil {
		return nil, errors.BadRequest("Username already exists", nil)
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return uc.issueTokens(user)
}

func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("failed login attempt for user %s", username)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	return uc.issueTokens(user)
}

// RegisterOrLogin looks the account up by username or email and branches
// into login when it exists, registration when it does not.
func (uc *AuthUseCase) RegisterOrLogin(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	user, err := uc.userRepo.GetByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return uc.Register(ctx, input)
		}
		return nil, err
	}

	return uc.Login(ctx, user.Username, input.Password)
}

func (uc *AuthUseCase) CheckUserExists(ctx context.Context, username, email string) (bool, error) {
	_, err := uc.userRepo.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (uc *AuthUseCase) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := uc.tokens.Verify(refreshToken, token.TypeRefresh)
	if err != nil {
		return nil, errors.Unauthorized("Invalid refresh token", err)
	}

	revoked, err := uc.tokenRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, errors.Unauthorized("Refresh token has been revoked", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, errors.Unauthorized("Invalid refresh token", err)
	}

	return uc.issueTokens(user)
}

// Logout blacklists both halves of the pair so neither can be replayed.
func (uc *AuthUseCase) Logout(ctx context.Context, accessToken, refreshToken string) error {
	accessClaims, err := uc.tokens.Verify(accessToken, token.TypeAccess)
	if err != nil {
		return errors.Unauthorized("Invalid token", err)
	}

	if err := uc.tokenRepo.Revoke(ctx, accessClaims.ID, accessClaims.ExpiresAt.Time); err != nil {
		return err
	}

	if refreshToken != "" {
		refreshClaims, err := uc.tokens.Verify(refreshToken, token.TypeRefresh)
		if err != nil {
			return errors.BadRequest("Invalid refresh token", err)
		}

		if err := uc.tokenRepo.Revoke(ctx, refreshClaims.ID, refreshClaims.ExpiresAt.Time); err != nil {
			return err
		}
	}

	return nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func (uc *AuthUseCase) issueTokens(user *entity.User) (*AuthResult, error) {
	pair, err := uc.tokens.GeneratePair(user.ID, user.Username)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication tokens", err)
	}

	return &AuthResult{
		User:         user,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
