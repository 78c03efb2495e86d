package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portfolio/internal/database"
)

// ErrInvalidCredentials is returned when the username is unknown or the
// password does not match. Callers must not distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned for malformed, expired or tampered tokens.
var ErrInvalidToken = errors.New("invalid token")

// UserSource is the credential lookup the service needs from the store.
type UserSource interface {
	GetUserByUsername(ctx context.Context, username string) (database.User, bool, error)
}

// Service verifies credentials and issues signed, time-limited bearer tokens.
// There is no server-side revocation; logout is client-side token discard.
type Service struct {
	users    UserSource
	secret   []byte
	tokenTTL time.Duration
}

// Claims carries the authenticated identity inside the JWT.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewService constructs the auth service around a signing secret.
func NewService(users UserSource, secret string, tokenTTL time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if tokenTTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &Service{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}, nil
}

// Login checks the password against the stored bcrypt hash and returns a
// signed token plus the matched user. bcrypt comparison is constant time.
func (s *Service) Login(ctx context.Context, username, password string) (string, database.User, error) {
	user, found, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", database.User{}, fmt.Errorf("lookup user: %w", err)
	}
	if !found || !CheckPasswordHash(password, user.PasswordHash) {
		return "", database.User{}, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", database.User{}, err
	}
	return token, user, nil
}

// GenerateToken signs an HS256 token carrying the user identity and expiry.
func (s *Service) GenerateToken(user database.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a bearer token, returning its claims.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// TokenTTL exposes the configured token lifetime.
func (s *Service) TokenTTL() time.Duration {
	return s.tokenTTL
}
