package employee

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
	spec     view.Spec[Employee]
	logger   *zap.Logger
}

func NewHandler(services Provider, locale language.Tag, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{services: services, spec: ViewSpec(locale), logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := response.FromError(c, err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
}

func (h *Handler) service(c *gin.Context) (Service, bool) {
	svc, err := h.services.Employees(c.Request.Context())
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
	p := listing.ParseParams(c, "department")
	h.logger.Debug("http list employees", zap.String("tab", string(p.Tab)), zap.String("q", p.Search))

	items, err := svc.List(c.Request.Context())
	if err != nil {
		h.logger.Warn("list employees failed", zap.Bool("stale", items != nil), zap.Error(err))
	}
	listing.Respond(c, items, err, svc.State(), h.spec, p, listing.Query[Employee](p))
}

func (h *Handler) Export(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	p := listing.ParseParams(c, "department")

	items, err := svc.List(c.Request.Context())
	if err != nil && items == nil {
		h.writeServiceError(c, err)
		return
	}
	listing.Export(c, items, h.spec, listing.Query[Employee](p), "employees", ExportTable)
}

func (h *Handler) GetByID(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	id := c.Param("id")
	h.logger.Debug("http get employee by id", zap.String("employee_id", id))

	resp, err := svc.GetByID(c.Request.Context(), id)
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
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
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

func (h *Handler) Update(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	id := c.Param("id")
	h.logger.Debug("http update employee", zap.String("employee_id", id))

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := svc.Update(c.Request.Context(), id, req)
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
	h.logger.Debug("http deactivate employee", zap.String("employee_id", id))

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
	h.logger.Debug("http restore employee", zap.String("employee_id", id))

	if err := svc.Restore(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "isActive": true}, nil)
}
