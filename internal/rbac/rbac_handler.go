package rbac

import (
	"net/http"
	"strings"

	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

// Enforce answers whether the caller's role may perform action on resource.
func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	req.Role = c.GetString("role")
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	allowed, err := h.service.Enforce(req)
	if err != nil {
		h.logger.Error("rbac enforce failed", zap.Error(err))
		response.FromError(c, apperror.ErrInternal.WithDetail("", err))
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Allowed: allowed}, nil)
}

// MyPermissions lists what the caller's role grants, for hiding UI actions.
func (h *Handler) MyPermissions(c *gin.Context) {
	resp, err := h.service.Permissions(c.GetString("role"))
	if err != nil {
		h.logger.Error("rbac permissions failed", zap.Error(err))
		response.FromError(c, apperror.ErrInternal.WithDetail("", err))
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
