package onboarding

import (
	"github.com/vbasilioo/workly-web/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, idempotency gin.HandlerFunc) {
	r.POST("/onboarding",
		middleware.RateLimitByUser(1, 3),
		middleware.RBACAuthorize(rbacService, "onboarding", "create"),
		middleware.Optional(idempotency),
		handler.Create,
	)
}
