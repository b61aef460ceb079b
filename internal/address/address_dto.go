package address

import (
	"strings"

	addresserrors "github.com/vbasilioo/workly-web/internal/address/errors"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
)

const (
	TypeResidential = "residential"
	TypeCommercial  = "commercial"
	TypeOther       = "other"
)

type CreateAddressRequest struct {
	Street       string `json:"street" binding:"required,max=150"`
	Number       string `json:"number,omitempty" binding:"omitempty,max=10"`
	Complement   string `json:"complement,omitempty" binding:"omitempty,max=100"`
	Neighborhood string `json:"neighborhood" binding:"required,max=100"`
	City         string `json:"city" binding:"required,max=100"`
	State        string `json:"state" binding:"required,max=50"`
	ZipCode      string `json:"zipCode" binding:"required,min=8,max=9"`
	Type         string `json:"type,omitempty" binding:"omitempty,oneof=residential commercial other"`
	Reference    string `json:"reference,omitempty" binding:"omitempty,max=150"`
}

func (r CreateAddressRequest) Validate() error {
	return apperror.Validate(r)
}

// CreateAddressWithEmployeeRequest binds the new address to an existing employee.
type CreateAddressWithEmployeeRequest struct {
	CreateAddressRequest
	EmployeeID string `json:"employeeId" binding:"required"`
}

// Validate accepts any non-blank employee id; ids are issued by the backend.
func (r CreateAddressWithEmployeeRequest) Validate() error {
	if strings.TrimSpace(r.EmployeeID) == "" {
		return addresserrors.ErrEmployeeIDRequired
	}
	return apperror.Validate(r)
}

type UpdateAddressRequest struct {
	Street       *string `json:"street,omitempty" binding:"omitempty,min=1,max=150"`
	Number       *string `json:"number,omitempty" binding:"omitempty,max=10"`
	Complement   *string `json:"complement,omitempty" binding:"omitempty,max=100"`
	Neighborhood *string `json:"neighborhood,omitempty" binding:"omitempty,min=1,max=100"`
	City         *string `json:"city,omitempty" binding:"omitempty,min=1,max=100"`
	State        *string `json:"state,omitempty" binding:"omitempty,min=1,max=50"`
	ZipCode      *string `json:"zipCode,omitempty" binding:"omitempty,min=8,max=9"`
	Type         *string `json:"type,omitempty" binding:"omitempty,oneof=residential commercial other"`
	Reference    *string `json:"reference,omitempty" binding:"omitempty,max=150"`
}

func (r UpdateAddressRequest) Validate() error {
	return apperror.Validate(r)
}
