package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/vbasilioo/workly-web/internal/session"
	sessionerrors "github.com/vbasilioo/workly-web/internal/session/errors"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestIssueAndParse(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		token, err := session.Issue(secret, "u-1", "Ana", "ana@x.com", session.RoleAdministrator, time.Hour)
		require.NoError(t, err)

		claims, err := session.Parse(secret, token)

		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID())
		assert.Equal(t, "Ana", claims.Name)
		assert.Equal(t, session.RoleAdministrator, claims.Role)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := session.Issue(secret, "u-1", "Ana", "ana@x.com", session.RoleUser, -time.Minute)
		require.NoError(t, err)

		_, err = session.Parse(secret, token)

		assert.ErrorIs(t, err, sessionerrors.ErrTokenExpired)
		assert.True(t, apperror.IsAuth(err))
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := session.Issue(secret, "u-1", "Ana", "ana@x.com", session.RoleUser, time.Hour)

		_, err := session.Parse("other", token)

		assert.True(t, apperror.IsAuth(err))
	})

	t.Run("missing subject", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "user"}).SignedString([]byte(secret))

		_, err := session.Parse(secret, token)

		assert.ErrorIs(t, err, sessionerrors.ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := session.Parse(secret, "")

		assert.ErrorIs(t, err, sessionerrors.ErrTokenMissing)
	})
}

func TestContextTokenSource(t *testing.T) {
	src := session.ContextTokenSource{}

	_, err := src.Token(context.Background())
	assert.ErrorIs(t, err, sessionerrors.ErrTokenMissing)

	ctx := contextutil.WithBearerToken(context.Background(), "abc")
	token, err := src.Token(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestValidRole(t *testing.T) {
	assert.True(t, session.ValidRole("administrator"))
	assert.True(t, session.ValidRole("user"))
	assert.False(t, session.ValidRole("management"))
	assert.False(t, session.ValidRole("employee"))
}
