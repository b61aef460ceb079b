package mockapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/vbasilioo/workly-web/internal/session"
	"github.com/vbasilioo/workly-web/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// account is a stored user with its password hash.
type account struct {
	ID           string
	Name         string
	Email        string
	Role         string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a account) public() user.User {
	return user.User{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginData struct {
	AccessToken string    `json:"access_token"`
	User        user.User `json:"user"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	acc, ok := s.users.Find(func(a account) bool {
		return strings.EqualFold(a.Email, req.Email)
	})
	if !ok || bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(req.Password)) != nil {
		abort(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := session.Issue(s.secret, acc.ID, acc.Name, acc.Email, acc.Role, s.tokenTTL)
	if err != nil {
		s.logger.Error("issue token failed", zap.String("user_id", acc.ID), zap.Error(err))
		abort(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": loginData{AccessToken: token, User: acc.public()}})
}
