package preference

import (
	"net/http"

	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("preference.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("preference.handler")
	}
	return &Handler{svc: svc, logger: l}
}

func (h *Handler) Get(c *gin.Context) {
	pref, err := h.svc.Get(c.Request.Context())
	if err != nil {
		httpErr := response.FromError(c, err)
		h.logger.Warn("get preferences failed", zap.Int("status", httpErr.Status), zap.Error(err))
		return
	}
	response.Success(c, http.StatusOK, pref, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	pref, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		httpErr := response.FromError(c, err)
		h.logger.Warn("update preferences failed", zap.Int("status", httpErr.Status), zap.Error(err))
		return
	}
	response.Success(c, http.StatusOK, pref, nil)
}
