package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/trouvaille/lostfound/internal/model"
	"github.com/trouvaille/lostfound/internal/store"
)

// TokenManager issues and validates HS256 session tokens.
type TokenManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// Claims are the custom JWT claims for a session. The subject is the
// username; the admin flag is re-read from storage on every request, never
// trusted from the token.
type Claims struct {
	jwt.RegisteredClaims
}

func NewTokenManager(secretKey string, tokenDuration time.Duration) *TokenManager {
	return &TokenManager{secretKey: []byte(secretKey), tokenDuration: tokenDuration}
}

// Generate creates a signed token for the given user.
func (m *TokenManager) Generate(user *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns the subject username.
func (m *TokenManager) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// JWTAuthorizer resolves tokens against the user store.
type JWTAuthorizer struct {
	tokens *TokenManager
	users  store.Users
}

func NewJWTAuthorizer(tokens *TokenManager, users store.Users) *JWTAuthorizer {
	return &JWTAuthorizer{tokens: tokens, users: users}
}

func (a *JWTAuthorizer) Authorize(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	username, err := a.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		// The account may have been removed since the token was issued.
		return nil, ErrInvalidToken
	}
	return user, nil
}
