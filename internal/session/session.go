package session

import (
	"context"
	"errors"
	"time"

	sessionerrors "github.com/vbasilioo/workly-web/internal/session/errors"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdministrator = "administrator"
	RoleUser          = "user"
)

// Claims is the access token payload. Subject carries the user id.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (c Claims) UserID() string {
	return c.Subject
}

// ValidRole reports whether role is one of the two supported account roles.
func ValidRole(role string) bool {
	return role == RoleAdministrator || role == RoleUser
}

// Issue signs an HS256 access token for the given account.
func Issue(secret, userID, name, email, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:  name,
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse verifies tokenString and returns its claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, sessionerrors.ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, sessionerrors.ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, sessionerrors.ErrTokenExpired
		}
		return nil, sessionerrors.ErrInvalidToken.WithDetail("", err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, sessionerrors.ErrInvalidToken
	}

	return claims, nil
}

// TokenSource yields the bearer credential for outbound API calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// ContextTokenSource reads the token the auth middleware stored on the request context.
type ContextTokenSource struct{}

func (ContextTokenSource) Token(ctx context.Context) (string, error) {
	token := contextutil.GetBearerToken(ctx)
	if token == "" {
		return "", sessionerrors.ErrTokenMissing
	}
	return token, nil
}

// StaticTokenSource always returns the same token. Used by tooling and tests.
type StaticTokenSource string

func (s StaticTokenSource) Token(context.Context) (string, error) {
	if s == "" {
		return "", sessionerrors.ErrTokenMissing
	}
	return string(s), nil
}
