package notify

import (
	"context"
	"net/http"

	"github.com/vbasilioo/workly-web/internal/middleware"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"
	"github.com/vbasilioo/workly-web/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Drainer interface {
	Drain(ctx context.Context, userID string) ([]Notification, error)
}

type Handler struct {
	queue  Drainer
	logger *zap.Logger
}

// NewHandler serves pending notifications. A nil queue always answers with an
// empty list.
func NewHandler(queue Drainer, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("notify.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify.handler")
	}
	return &Handler{queue: queue, logger: l}
}

func (h *Handler) Drain(c *gin.Context) {
	ctx := c.Request.Context()
	uid := contextutil.GetUserID(ctx)
	if uid == "" {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	items := []Notification{}
	if h.queue != nil {
		drained, err := h.queue.Drain(ctx, uid)
		if err != nil {
			h.logger.Warn("drain notifications failed", zap.String("user_id", uid), zap.Error(err))
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "Notifications are unavailable", nil)
			return
		}
		items = append(items, drained...)
	}

	response.Success(c, http.StatusOK, items, nil)
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	r.GET("/notifications",
		middleware.RBACAuthorize(rbacService, "notification", "read"),
		handler.Drain,
	)
}
