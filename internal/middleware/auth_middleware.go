package middleware

import (
	"strings"

	"github.com/vbasilioo/workly-web/internal/session"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"
	"github.com/vbasilioo/workly-web/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts a bearer token or the access_token cookie. The token
// is kept on the request context so outbound API calls reuse it.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}
		tokenString = strings.TrimSpace(tokenString)

		claims, err := session.Parse(secret, tokenString)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID())
		c.Set("role", claims.Role)
		c.Set("user_name", claims.Name)

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, claims.UserID())
		ctx = contextutil.WithRole(ctx, claims.Role)
		ctx = contextutil.WithBearerToken(ctx, tokenString)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
