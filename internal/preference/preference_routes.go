package preference

import (
	"github.com/vbasilioo/workly-web/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	prefs := r.Group("/preferences")
	{
		prefs.GET("", middleware.RBACAuthorize(rbacService, "preference", "read"), handler.Get)
		prefs.PUT("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "preference", "update"),
			handler.Update,
		)
	}
}
