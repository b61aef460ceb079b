package address

import (
	"net/http"

	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/listing"
	"github.com/vbasilioo/workly-web/internal/shared/response"
	"github.com/vbasilioo/workly-web/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type Handler struct {
	services Provider
	spec     view.Spec[Address]
	logger   *zap.Logger
}

func NewHandler(services Provider, locale language.Tag, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("address.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("address.handler")
	}
	return &Handler{services: services, spec: ViewSpec(locale), logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := response.FromError(c, err)
	h.logger.Warn("address request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
}

func (h *Handler) service(c *gin.Context) (Service, bool) {
	svc, err := h.services.Addresses(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return nil, false
	}
	return svc, true
}

func (h *Handler) GetAll(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	p := listing.ParseParams(c, "type")

	items, err := svc.List(c.Request.Context())
	if err != nil {
		h.logger.Warn("list addresses failed", zap.Bool("stale", items != nil), zap.Error(err))
	}
	listing.Respond(c, items, err, svc.State(), h.spec, p, listing.Query[Address](p))
}

func (h *Handler) Export(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	p := listing.ParseParams(c, "type")

	items, err := svc.List(c.Request.Context())
	if err != nil && items == nil {
		h.writeServiceError(c, err)
		return
	}
	listing.Export(c, items, h.spec, listing.Query[Address](p), "addresses", ExportTable)
}

func (h *Handler) GetByID(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	resp, err := svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmployeeID(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	resp, err := svc.GetByEmployeeID(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := svc.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CreateWithEmployee(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	var req CreateAddressWithEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := svc.CreateWithEmployee(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	var req UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Deactivate(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := svc.Deactivate(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "isActive": false}, nil)
}

func (h *Handler) Restore(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := svc.Restore(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "isActive": true}, nil)
}
