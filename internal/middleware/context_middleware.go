package middleware

import (
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request scoped logger. Run it after RequestID and AuthMiddleware.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		meta := contextutil.ExtractMetadata(ctx)

		reqLogger := logger.With(
			zap.String("request_id", meta.RequestID),
			zap.String("user_id", meta.UserID),
		)

		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))
		c.Next()
	}
}
