package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"foodfinder/internal/usecase"
	"foodfinder/pkg/errors"
	"foodfinder/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type authResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         userResponse `json:"user"`
}

func newAuthResponse(result *usecase.AuthResult) authResponse {
	return authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		User: userResponse{
			ID:       result.User.ID,
			Username: result.User.Username,
			Email:    result.User.Email,
		},
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, newAuthResponse(result))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, newAuthResponse(result))
}

// RegisterOrLogin handles the combined endpoint: an existing username or
// email is a login attempt, anything else registers.
func (h *AuthHandler) RegisterOrLogin(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.RegisterOrLogin(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, newAuthResponse(result))
}

func (h *AuthHandler) CheckUserExists(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	exists, err := h.authUseCase.CheckUserExists(c.Request().Context(), req.Username, req.Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{
		"exists": exists,
	})
}

func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, newAuthResponse(result))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return response.Error(c, errors.Unauthorized("Authorization header required", nil))
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
	}
	accessToken := parts[1]

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	// Body is optional; without it only the access token is revoked.
	c.Bind(&req)

	if err := h.authUseCase.Logout(c.Request().Context(), accessToken, req.RefreshToken); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Successfully logged out",
	})
}
