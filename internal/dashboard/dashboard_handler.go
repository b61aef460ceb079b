package dashboard

import (
	"net/http"

	"github.com/vbasilioo/workly-web/internal/middleware"
	"github.com/vbasilioo/workly-web/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{svc: svc, logger: l}
}

func (h *Handler) Summary(c *gin.Context) {
	sum, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		httpErr := response.FromError(c, err)
		h.logger.Warn("dashboard summary failed", zap.Int("status", httpErr.Status), zap.Error(err))
		return
	}
	response.Success(c, http.StatusOK, sum, nil)
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	r.GET("/dashboard",
		middleware.RateLimitByUser(5, 20),
		middleware.RBACAuthorize(rbacService, "dashboard", "read"),
		handler.Summary,
	)
}
