// Package mockapi is an in-memory stand-in for the Workly resource API,
// used for local development and contract tests.
package mockapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vbasilioo/workly-web/internal/address"
	"github.com/vbasilioo/workly-web/internal/employee"
	"github.com/vbasilioo/workly-web/internal/middleware"
	"github.com/vbasilioo/workly-web/internal/session"
	"github.com/vbasilioo/workly-web/internal/setting"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

type Config struct {
	JWTSecret  string
	TokenTTL   time.Duration
	Seed       Seed
	Settings   []setting.CreateSettingRequest
	BcryptCost int
	// LoginRate and LoginBurst limit login attempts per client IP.
	LoginRate  rate.Limit
	LoginBurst int
}

type Server struct {
	employees *Collection[employee.Employee]
	addresses *Collection[address.Address]
	settings  *Collection[setting.Setting]
	users     *Collection[account]

	secret     string
	tokenTTL   time.Duration
	cost       int
	loginRate  rate.Limit
	loginBurst int
	now        func() time.Time
	logger     *zap.Logger
}

func New(cfg Config, logger ...*zap.Logger) (*Server, error) {
	l := zap.L().Named("mockapi")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mockapi")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("mockapi: jwt secret must be set")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.LoginRate == 0 {
		cfg.LoginRate = 1
	}
	if cfg.LoginBurst <= 0 {
		cfg.LoginBurst = 5
	}

	apperror.Init()

	s := &Server{
		employees:  NewCollection(func(e employee.Employee) string { return e.ID }),
		addresses:  NewCollection(func(a address.Address) string { return a.ID }),
		settings:   NewCollection(func(st setting.Setting) string { return st.ID }),
		users:      NewCollection(func(a account) string { return a.ID }),
		secret:     cfg.JWTSecret,
		tokenTTL:   cfg.TokenTTL,
		cost:       cfg.BcryptCost,
		loginRate:  cfg.LoginRate,
		loginBurst: cfg.LoginBurst,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     l,
	}
	if err := s.load(cfg.Seed, cfg.Settings); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) load(seed Seed, settings []setting.CreateSettingRequest) error {
	now := s.now()

	for _, u := range seed.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), s.cost)
		if err != nil {
			return fmt.Errorf("mockapi: hash password of %s: %w", u.Email, err)
		}
		acc := account{
			ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role,
			PasswordHash: hash, CreatedAt: now, UpdatedAt: now,
		}
		if err := s.users.Insert(acc, sameEmail); err != nil {
			return fmt.Errorf("mockapi: seed user %s: %w", u.Email, err)
		}
	}

	for _, e := range seed.Employees {
		salary, err := decimal.NewFromString(e.Salary)
		if err != nil {
			return fmt.Errorf("mockapi: seed employee %s salary: %w", e.Email, err)
		}
		emp := employee.Employee{
			ID: e.ID, Name: e.Name, Email: e.Email, Phone: e.Phone,
			Position: e.Position, Department: e.Department, HireDate: e.HireDate,
			Salary: salary, IsActive: e.IsActive, CreatedAt: now, UpdatedAt: now,
		}
		if err := s.employees.Insert(emp, sameEmployeeEmail); err != nil {
			return fmt.Errorf("mockapi: seed employee %s: %w", e.Email, err)
		}
	}

	for _, a := range seed.Addresses {
		addr := address.Address{
			ID: a.ID, Street: a.Street, Number: a.Number, Complement: a.Complement,
			Neighborhood: a.Neighborhood, City: a.City, State: a.State, ZipCode: a.ZipCode,
			Type: a.Type, EmployeeID: a.EmployeeID, IsActive: a.IsActive,
			CreatedAt: now, UpdatedAt: now,
		}
		if err := s.addresses.Insert(addr, sameEmployee); err != nil {
			return fmt.Errorf("mockapi: seed address %s: %w", a.ID, err)
		}
	}

	for _, req := range settings {
		st := setting.Setting{
			ID: uuid.NewString(), Key: req.Key, Value: req.Value, Group: req.Group,
			Description: req.Description, IsPublic: req.IsPublic, IsActive: true,
			CreatedAt: now, UpdatedAt: now,
		}
		if err := s.settings.Insert(st, sameKey); err != nil {
			return fmt.Errorf("mockapi: seed setting %s: %w", req.Key, err)
		}
	}

	s.logger.Info("mock api seeded",
		zap.Int("users", s.users.Len()),
		zap.Int("employees", s.employees.Len()),
		zap.Int("addresses", s.addresses.Len()),
		zap.Int("settings", s.settings.Len()),
	)
	return nil
}

// Handler returns a ready engine serving every route.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	s.Register(r)
	return r
}

func (s *Server) Register(r gin.IRouter) {
	r.POST("/auth/login", middleware.RateLimitByIP(s.loginRate, s.loginBurst), s.login)

	authed := r.Group("", s.requireToken)
	s.registerEmployees(authed)
	s.registerAddresses(authed)
	s.registerSettings(authed)
	s.registerUsers(authed)
}

func (s *Server) requireToken(c *gin.Context) {
	token, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	claims, err := session.Parse(s.secret, strings.TrimSpace(token))
	if err != nil {
		abort(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c.Set("user_id", claims.UserID())
	c.Next()
}

func sameEmail(a, b account) bool {
	return strings.EqualFold(a.Email, b.Email)
}

func sameEmployeeEmail(a, b employee.Employee) bool {
	return strings.EqualFold(a.Email, b.Email)
}

// sameEmployee enforces at most one address per employee.
func sameEmployee(a, b address.Address) bool {
	return a.EmployeeID != "" && a.EmployeeID == b.EmployeeID
}

func sameKey(a, b setting.Setting) bool {
	return a.Key == b.Key
}
