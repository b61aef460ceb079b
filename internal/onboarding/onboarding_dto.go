package onboarding

import (
	"github.com/vbasilioo/workly-web/internal/address"
	"github.com/vbasilioo/workly-web/internal/employee"
)

type Step int

const (
	StepEmployee Step = 1
	StepAddress  Step = 2
)

func (s Step) String() string {
	switch s {
	case StepEmployee:
		return "employee"
	case StepAddress:
		return "address"
	default:
		return "unknown"
	}
}

type Request struct {
	Employee employee.CreateEmployeeRequest `json:"employee"`
	Address  address.CreateAddressRequest   `json:"address"`
}

type Result struct {
	Employee employee.Employee `json:"employee"`
	Address  *address.Address  `json:"address,omitempty"`
}
