package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

type Claims struct {
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Pair is an access/refresh token pair issued on register, login and
// refresh. The parsed claims ride along so callers can blacklist by jti
// without re-parsing.
type Pair struct {
	AccessToken   string
	RefreshToken  string
	AccessClaims  *Claims
	RefreshClaims *Claims
}

// Manager signs and verifies HS256 bearer tokens.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (m *Manager) GeneratePair(userID, username string) (*Pair, error) {
	accessToken, accessClaims, err := m.generate(userID, username, TypeAccess, m.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshClaims, err := m.generate(userID, username, TypeRefresh, m.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &Pair{
		AccessToken:   accessToken,
		RefreshToken:  refreshToken,
		AccessClaims:  accessClaims,
		RefreshClaims: refreshClaims,
	}, nil
}

func (m *Manager) generate(userID, username, tokenType string, ttl time.Duration) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}

	return signed, claims, nil
}

// Verify parses and validates a token and checks it carries the expected
// token_type claim, so a refresh token cannot be replayed as an access
// token or vice versa.
func (m *Manager) Verify(tokenString, wantType string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims.TokenType != wantType {
		return nil, fmt.Errorf("token is not a %s token", wantType)
	}

	return claims, nil
}
