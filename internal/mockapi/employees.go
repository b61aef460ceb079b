package mockapi

import (
	"errors"
	"net/http"

	"github.com/vbasilioo/workly-web/internal/employee"
	employeeerrors "github.com/vbasilioo/workly-web/internal/employee/errors"
	"github.com/vbasilioo/workly-web/internal/lifecycle"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) registerEmployees(r gin.IRouter) {
	g := r.Group(employee.BasePath)
	g.GET("", s.listEmployees)
	g.GET("/:id", s.getEmployee)
	g.POST("", s.createEmployee)
	g.PUT("/:id", s.updateEmployee)
	g.DELETE("/:id", s.transitionEmployee(lifecycle.Deactivate))
	g.PATCH("/:id/restore", s.transitionEmployee(lifecycle.Restore))
}

func (s *Server) listEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, s.employees.All())
}

func (s *Server) getEmployee(c *gin.Context) {
	emp, ok := s.employees.Get(c.Param("id"))
	if !ok {
		abort(c, http.StatusNotFound, employeeerrors.ErrEmployeeNotFound.Message)
		return
	}
	c.JSON(http.StatusOK, emp)
}

func (s *Server) createEmployee(c *gin.Context) {
	var req employee.CreateEmployeeRequest
	if !bind(c, &req) {
		return
	}

	now := s.now()
	emp := employee.Employee{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
		HireDate:   req.HireDate,
		CPF:        req.CPF,
		RG:         req.RG,
		CNH:        req.CNH,
		Salary:     req.Salary,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.employees.Insert(emp, sameEmployeeEmail); err != nil {
		abort(c, http.StatusConflict, employeeerrors.ErrEmployeeAlreadyExists.Message)
		return
	}
	c.JSON(http.StatusCreated, emp)
}

func (s *Server) updateEmployee(c *gin.Context) {
	var req employee.UpdateEmployeeRequest
	if !bind(c, &req) {
		return
	}

	emp, err := s.employees.Update(c.Param("id"), func(e *employee.Employee) error {
		setIf(&e.Name, req.Name)
		setIf(&e.Email, req.Email)
		setIf(&e.Phone, req.Phone)
		setIf(&e.Position, req.Position)
		setIf(&e.Department, req.Department)
		setIf(&e.HireDate, req.HireDate)
		setIf(&e.CPF, req.CPF)
		setIf(&e.RG, req.RG)
		setIf(&e.CNH, req.CNH)
		setIf(&e.Salary, req.Salary)
		e.UpdatedAt = s.now()
		return nil
	}, sameEmployeeEmail)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, emp)
	case errors.Is(err, errNotFound):
		abort(c, http.StatusNotFound, employeeerrors.ErrEmployeeNotFound.Message)
	default:
		abort(c, http.StatusConflict, employeeerrors.ErrEmployeeAlreadyExists.Message)
	}
}

func (s *Server) transitionEmployee(t lifecycle.Transition) gin.HandlerFunc {
	policy := lifecycle.For(lifecycle.KindEmployee)
	return func(c *gin.Context) {
		if err := policy.Allow(t); err != nil {
			badRequest(c, err)
			return
		}
		emp, err := s.employees.Update(c.Param("id"), func(e *employee.Employee) error {
			e.IsActive = t.Apply(e.IsActive)
			e.UpdatedAt = s.now()
			return nil
		}, nil)
		if err != nil {
			abort(c, http.StatusNotFound, employeeerrors.ErrEmployeeNotFound.Message)
			return
		}
		c.JSON(http.StatusOK, emp)
	}
}

// setIf copies *src into dst when the field was sent.
func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
