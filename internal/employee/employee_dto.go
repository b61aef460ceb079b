package employee

import (
	"github.com/vbasilioo/workly-web/internal/shared/apperror"

	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name       string          `json:"name" binding:"required,min=2,max=120"`
	Email      string          `json:"email" binding:"required,email"`
	Phone      string          `json:"phone,omitempty" binding:"omitempty,max=20"`
	Position   string          `json:"position" binding:"required"`
	Department string          `json:"department" binding:"required"`
	HireDate   string          `json:"hireDate" binding:"required,datetime=2006-01-02"`
	CPF        string          `json:"cpf,omitempty" binding:"omitempty,max=14"`
	RG         string          `json:"rg,omitempty" binding:"omitempty,max=20"`
	CNH        string          `json:"cnh,omitempty" binding:"omitempty,max=20"`
	Salary     decimal.Decimal `json:"salary"`
	// Status is the deprecated lifecycle field; deactivate and restore replace it.
	Status *string `json:"status,omitempty" binding:"isdefault"`
}

func (r CreateEmployeeRequest) Validate() error {
	if err := apperror.Validate(r); err != nil {
		return err
	}
	if r.Salary.IsNegative() {
		return apperror.InvalidField("Salary")
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name       *string          `json:"name,omitempty" binding:"omitempty,min=2,max=120"`
	Email      *string          `json:"email,omitempty" binding:"omitempty,email"`
	Phone      *string          `json:"phone,omitempty" binding:"omitempty,max=20"`
	Position   *string          `json:"position,omitempty" binding:"omitempty,min=1"`
	Department *string          `json:"department,omitempty" binding:"omitempty,min=1"`
	HireDate   *string          `json:"hireDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	CPF        *string          `json:"cpf,omitempty" binding:"omitempty,max=14"`
	RG         *string          `json:"rg,omitempty" binding:"omitempty,max=20"`
	CNH        *string          `json:"cnh,omitempty" binding:"omitempty,max=20"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
	Status     *string          `json:"status,omitempty" binding:"isdefault"`
}

func (r UpdateEmployeeRequest) Validate() error {
	if err := apperror.Validate(r); err != nil {
		return err
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		return apperror.InvalidField("Salary")
	}
	return nil
}
