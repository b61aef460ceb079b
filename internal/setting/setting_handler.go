package setting

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
	spec     view.Spec[Setting]
	logger   *zap.Logger
}

func NewHandler(services Provider, locale language.Tag, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("setting.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("setting.handler")
	}
	return &Handler{services: services, spec: ViewSpec(locale), logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := response.FromError(c, err)
	h.logger.Warn("setting request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
}

func (h *Handler) service(c *gin.Context) (Service, bool) {
	svc, err := h.services.Settings(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return nil, false
	}
	return svc, true
}

// params opens on the "all" tab sorted by key, like the settings page.
func (h *Handler) params(c *gin.Context) (listing.Params, view.Query[Setting]) {
	p := listing.ParseParams(c, "group")
	if c.Query("tab") == "" {
		p.Tab = view.TabAll
	}
	if c.Query("order") == "" {
		p.Order = view.OrderAsc
	}
	return p, listing.Query(p, ParseVisibility(c.Query("visibility")).Predicate())
}

func (h *Handler) GetAll(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	p, q := h.params(c)

	items, err := svc.List(c.Request.Context())
	if err != nil {
		h.logger.Warn("list settings failed", zap.Bool("stale", items != nil), zap.Error(err))
	}
	listing.Respond(c, items, err, svc.State(), h.spec, p, q)
}

func (h *Handler) Export(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	_, q := h.params(c)

	items, err := svc.List(c.Request.Context())
	if err != nil && items == nil {
		h.writeServiceError(c, err)
		return
	}
	listing.Export(c, items, h.spec, q, "settings", ExportTable)
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

func (h *Handler) Create(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	var req CreateSettingRequest
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

func (h *Handler) Update(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}
	var req UpdateSettingRequest
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

func (h *Handler) InitializeDefaults(c *gin.Context) {
	svc, ok := h.service(c)
	if !ok {
		return
	}

	res, err := svc.InitializeDefaults(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
