package mockapi

import (
	"errors"
	"net/http"

	"github.com/vbasilioo/workly-web/internal/lifecycle"
	"github.com/vbasilioo/workly-web/internal/user"
	usererrors "github.com/vbasilioo/workly-web/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) registerUsers(r gin.IRouter) {
	g := r.Group(user.BasePath)
	g.GET("", s.listUsers)
	g.GET("/:id", s.getUser)
	g.POST("", s.createUser)
	g.PUT("/:id", s.updateUser)
	g.DELETE("/:id", s.deleteUser)
}

func (s *Server) listUsers(c *gin.Context) {
	all := s.users.All()
	out := make([]user.User, 0, len(all))
	for _, a := range all {
		out = append(out, a.public())
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getUser(c *gin.Context) {
	acc, ok := s.users.Get(c.Param("id"))
	if !ok {
		abort(c, http.StatusNotFound, usererrors.ErrUserNotFound.Message)
		return
	}
	c.JSON(http.StatusOK, acc.public())
}

func (s *Server) hash(c *gin.Context, password string) ([]byte, bool) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		abort(c, http.StatusInternalServerError, "Internal server error")
		return nil, false
	}
	return h, true
}

func (s *Server) createUser(c *gin.Context) {
	var req user.CreateUserRequest
	if !bind(c, &req) {
		return
	}
	hash, ok := s.hash(c, req.Password)
	if !ok {
		return
	}

	now := s.now()
	acc := account{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Insert(acc, sameEmail); err != nil {
		abort(c, http.StatusConflict, usererrors.ErrUserAlreadyExists.Message)
		return
	}
	c.JSON(http.StatusCreated, acc.public())
}

func (s *Server) updateUser(c *gin.Context) {
	var req user.UpdateUserRequest
	if !bind(c, &req) {
		return
	}

	var hash []byte
	if req.Password != nil {
		var ok bool
		if hash, ok = s.hash(c, *req.Password); !ok {
			return
		}
	}

	acc, err := s.users.Update(c.Param("id"), func(a *account) error {
		setIf(&a.Name, req.Name)
		setIf(&a.Email, req.Email)
		setIf(&a.Role, req.Role)
		if hash != nil {
			a.PasswordHash = hash
		}
		a.UpdatedAt = s.now()
		return nil
	}, sameEmail)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, acc.public())
	case errors.Is(err, errNotFound):
		abort(c, http.StatusNotFound, usererrors.ErrUserNotFound.Message)
	default:
		abort(c, http.StatusConflict, usererrors.ErrUserAlreadyExists.Message)
	}
}

func (s *Server) deleteUser(c *gin.Context) {
	if err := lifecycle.For(lifecycle.KindUser).AllowHardDelete(); err != nil {
		badRequest(c, err)
		return
	}
	id := c.Param("id")
	if id == c.GetString("user_id") {
		abort(c, http.StatusBadRequest, usererrors.ErrCannotDeleteSelf.Message)
		return
	}
	if !s.users.Delete(id) {
		abort(c, http.StatusNotFound, usererrors.ErrUserNotFound.Message)
		return
	}
	c.Status(http.StatusNoContent)
}
