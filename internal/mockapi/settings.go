package mockapi

import (
	"errors"
	"net/http"

	"github.com/vbasilioo/workly-web/internal/lifecycle"
	"github.com/vbasilioo/workly-web/internal/setting"
	settingerrors "github.com/vbasilioo/workly-web/internal/setting/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) registerSettings(r gin.IRouter) {
	g := r.Group(setting.BasePath)
	g.GET("", s.listSettings)
	g.GET("/:id", s.getSetting)
	g.POST("", s.createSetting)
	g.PUT("/:id", s.updateSetting)
	g.DELETE("/:id", s.transitionSetting(lifecycle.Deactivate))
	g.PATCH("/:id/restore", s.transitionSetting(lifecycle.Restore))
}

func (s *Server) listSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.settings.All())
}

func (s *Server) getSetting(c *gin.Context) {
	st, ok := s.settings.Get(c.Param("id"))
	if !ok {
		abort(c, http.StatusNotFound, settingerrors.ErrSettingNotFound.Message)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) createSetting(c *gin.Context) {
	var req setting.CreateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.ApplyForm(); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, err)
		return
	}

	now := s.now()
	st := setting.Setting{
		ID:          uuid.NewString(),
		Key:         req.Key,
		Value:       req.Value,
		Group:       req.Group,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.settings.Insert(st, sameKey); err != nil {
		abort(c, http.StatusConflict, settingerrors.ErrSettingKeyExists.Message)
		return
	}
	c.JSON(http.StatusCreated, st)
}

func (s *Server) updateSetting(c *gin.Context) {
	var req setting.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.ApplyForm(); err != nil {
		badRequest(c, err)
		return
	}

	st, err := s.settings.Update(c.Param("id"), func(cur *setting.Setting) error {
		if req.Key != nil && *req.Key != cur.Key {
			return settingerrors.ErrKeyImmutable
		}
		if req.Value != nil {
			cur.Value = req.Value
		}
		setIf(&cur.Group, req.Group)
		setIf(&cur.Description, req.Description)
		setIf(&cur.IsPublic, req.IsPublic)
		cur.UpdatedAt = s.now()
		return nil
	}, nil)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, st)
	case errors.Is(err, errNotFound):
		abort(c, http.StatusNotFound, settingerrors.ErrSettingNotFound.Message)
	default:
		badRequest(c, err)
	}
}

func (s *Server) transitionSetting(t lifecycle.Transition) gin.HandlerFunc {
	policy := lifecycle.For(lifecycle.KindSetting)
	return func(c *gin.Context) {
		if err := policy.Allow(t); err != nil {
			badRequest(c, err)
			return
		}
		st, err := s.settings.Update(c.Param("id"), func(cur *setting.Setting) error {
			cur.IsActive = t.Apply(cur.IsActive)
			cur.UpdatedAt = s.now()
			return nil
		}, nil)
		if err != nil {
			abort(c, http.StatusNotFound, settingerrors.ErrSettingNotFound.Message)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}
