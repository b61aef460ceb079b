package onboarding

import (
	"errors"
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
	l := zap.L().Named("onboarding.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.handler")
	}
	return &Handler{svc: svc, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.svc.Onboard(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		details := gin.H{}
		var stepErr *StepError
		if errors.As(err, &stepErr) {
			details["step"] = stepErr.Step.String()
			if stepErr.Step > StepEmployee {
				details["employee"] = res.Employee
			}
		}
		h.logger.Warn("onboarding failed", zap.Int("status", httpErr.Status), zap.Any("step", details["step"]))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, details)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}
