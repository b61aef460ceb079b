package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// the API sends and expects salary as a JSON number
	decimal.MarshalJSONWithoutQuotes = true
}

type Employee struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	HireDate   string          `json:"hireDate"`
	CPF        string          `json:"cpf,omitempty"`
	RG         string          `json:"rg,omitempty"`
	CNH        string          `json:"cnh,omitempty"`
	Salary     decimal.Decimal `json:"salary"`
	IsActive   bool            `json:"isActive"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
