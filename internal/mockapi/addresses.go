package mockapi

import (
	"errors"
	"net/http"

	"github.com/vbasilioo/workly-web/internal/address"
	addresserrors "github.com/vbasilioo/workly-web/internal/address/errors"
	employeeerrors "github.com/vbasilioo/workly-web/internal/employee/errors"
	"github.com/vbasilioo/workly-web/internal/lifecycle"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) registerAddresses(r gin.IRouter) {
	g := r.Group(address.BasePath)
	g.GET("", s.listAddresses)
	g.GET("/employee/:employeeId", s.getAddressByEmployee)
	g.GET("/:id", s.getAddress)
	g.POST("", s.createAddress)
	g.POST("/with-employee", s.createAddressWithEmployee)
	g.PUT("/:id", s.updateAddress)
	g.DELETE("/:id", s.transitionAddress(lifecycle.Deactivate))
	g.PATCH("/:id/restore", s.transitionAddress(lifecycle.Restore))
}

func (s *Server) listAddresses(c *gin.Context) {
	c.JSON(http.StatusOK, s.addresses.All())
}

func (s *Server) getAddress(c *gin.Context) {
	addr, ok := s.addresses.Get(c.Param("id"))
	if !ok {
		abort(c, http.StatusNotFound, addresserrors.ErrAddressNotFound.Message)
		return
	}
	c.JSON(http.StatusOK, addr)
}

func (s *Server) getAddressByEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")
	addr, ok := s.addresses.Find(func(a address.Address) bool {
		return a.EmployeeID == employeeID
	})
	if !ok {
		abort(c, http.StatusNotFound, addresserrors.ErrAddressNotFound.Message)
		return
	}
	c.JSON(http.StatusOK, addr)
}

func (s *Server) newAddress(req address.CreateAddressRequest, employeeID string) address.Address {
	now := s.now()
	kind := req.Type
	if kind == "" {
		kind = address.TypeResidential
	}
	return address.Address{
		ID:           uuid.NewString(),
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Type:         kind,
		Reference:    req.Reference,
		EmployeeID:   employeeID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *Server) createAddress(c *gin.Context) {
	var req address.CreateAddressRequest
	if !bind(c, &req) {
		return
	}

	addr := s.newAddress(req, "")
	if err := s.addresses.Insert(addr, nil); err != nil {
		abort(c, http.StatusConflict, "Address already exists")
		return
	}
	c.JSON(http.StatusCreated, addr)
}

func (s *Server) createAddressWithEmployee(c *gin.Context) {
	var req address.CreateAddressWithEmployeeRequest
	if !bind(c, &req) {
		return
	}
	if _, ok := s.employees.Get(req.EmployeeID); !ok {
		abort(c, http.StatusNotFound, employeeerrors.ErrEmployeeNotFound.Message)
		return
	}

	addr := s.newAddress(req.CreateAddressRequest, req.EmployeeID)
	if err := s.addresses.Insert(addr, sameEmployee); err != nil {
		abort(c, http.StatusConflict, addresserrors.ErrEmployeeHasAddress.Message)
		return
	}
	c.JSON(http.StatusCreated, addr)
}

func (s *Server) updateAddress(c *gin.Context) {
	var req address.UpdateAddressRequest
	if !bind(c, &req) {
		return
	}

	addr, err := s.addresses.Update(c.Param("id"), func(a *address.Address) error {
		setIf(&a.Street, req.Street)
		setIf(&a.Number, req.Number)
		setIf(&a.Complement, req.Complement)
		setIf(&a.Neighborhood, req.Neighborhood)
		setIf(&a.City, req.City)
		setIf(&a.State, req.State)
		setIf(&a.ZipCode, req.ZipCode)
		setIf(&a.Type, req.Type)
		setIf(&a.Reference, req.Reference)
		a.UpdatedAt = s.now()
		return nil
	}, nil)
	if errors.Is(err, errNotFound) {
		abort(c, http.StatusNotFound, addresserrors.ErrAddressNotFound.Message)
		return
	}
	c.JSON(http.StatusOK, addr)
}

func (s *Server) transitionAddress(t lifecycle.Transition) gin.HandlerFunc {
	policy := lifecycle.For(lifecycle.KindAddress)
	return func(c *gin.Context) {
		if err := policy.Allow(t); err != nil {
			badRequest(c, err)
			return
		}
		addr, err := s.addresses.Update(c.Param("id"), func(a *address.Address) error {
			a.IsActive = t.Apply(a.IsActive)
			a.UpdatedAt = s.now()
			return nil
		}, nil)
		if err != nil {
			abort(c, http.StatusNotFound, addresserrors.ErrAddressNotFound.Message)
			return
		}
		c.JSON(http.StatusOK, addr)
	}
}
