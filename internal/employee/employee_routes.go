package employee

import (
	"github.com/vbasilioo/workly-web/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to run the auth and context middleware already.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	idempotency gin.HandlerFunc,
) {
	employees := r.Group("/employees")
	{
		employees.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetAll,
		)

		employees.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "employee", "export"),
			handler.Export,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			middleware.Optional(idempotency),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "employee", "update"),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "employee", "delete"),
			handler.Deactivate,
		)

		employees.PATCH("/:id/restore",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "employee", "restore"),
			handler.Restore,
		)
	}
}
