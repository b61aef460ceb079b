package address

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
	addresses := r.Group("/addresses")
	{
		addresses.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "address", "read"),
			handler.GetAll,
		)
		addresses.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "address", "export"),
			handler.Export,
		)
		addresses.GET("/employee/:employeeId",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "address", "read"),
			handler.GetByEmployeeID,
		)
		addresses.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "address", "read"),
			handler.GetByID,
		)
		addresses.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "address", "create"),
			middleware.Optional(idempotency),
			handler.Create,
		)
		addresses.POST("/with-employee",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "address", "create"),
			middleware.Optional(idempotency),
			handler.CreateWithEmployee,
		)
		addresses.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "address", "update"),
			handler.Update,
		)
		addresses.DELETE("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "address", "delete"),
			handler.Deactivate,
		)
		addresses.PATCH("/:id/restore",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "address", "restore"),
			handler.Restore,
		)
	}
}
