package setting

import (
	"github.com/vbasilioo/workly-web/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	idempotency gin.HandlerFunc,
) {
	settings := r.Group("/settings")
	{
		settings.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "setting", "read"),
			handler.GetAll,
		)
		settings.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "setting", "export"),
			handler.Export,
		)
		settings.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "setting", "read"),
			handler.GetByID,
		)
		settings.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "setting", "create"),
			middleware.Optional(idempotency),
			handler.Create,
		)
		settings.POST("/defaults",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "setting", "create"),
			handler.InitializeDefaults,
		)
		settings.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "setting", "update"),
			handler.Update,
		)
		settings.DELETE("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "setting", "delete"),
			handler.Deactivate,
		)
		settings.PATCH("/:id/restore",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "setting", "restore"),
			handler.Restore,
		)
	}
}
