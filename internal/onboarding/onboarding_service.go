// Package onboarding runs the two-step new hire wizard: create the employee,
// then create their address bound to the new employee id.
package onboarding

import (
	"context"

	"github.com/vbasilioo/workly-web/internal/address"
	"github.com/vbasilioo/workly-web/internal/employee"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	// Onboard returns the created employee even when the address step fails.
	Onboard(ctx context.Context, req Request) (Result, error)
}

type service struct {
	employees employee.Provider
	addresses address.Provider
	logger    *zap.Logger
}

func NewService(employees employee.Provider, addresses address.Provider, logger ...*zap.Logger) Service {
	l := zap.L().Named("onboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.service")
	}
	return &service{employees: employees, addresses: addresses, logger: l}
}

func (s *service) Onboard(ctx context.Context, req Request) (Result, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employees, err := s.employees.Employees(ctx)
	if err != nil {
		return Result{}, err
	}
	addresses, err := s.addresses.Addresses(ctx)
	if err != nil {
		return Result{}, err
	}

	emp, err := employees.Create(ctx, req.Employee)
	if err != nil {
		return Result{}, &StepError{Step: StepEmployee, Err: err}
	}
	res := Result{Employee: emp}

	addr, err := addresses.CreateWithEmployee(ctx, address.CreateAddressWithEmployeeRequest{
		CreateAddressRequest: req.Address,
		EmployeeID:           emp.ID,
	})
	if err != nil {
		log.Warn("onboarding address step failed, employee kept",
			zap.String("employee_id", emp.ID),
			zap.Error(err),
		)
		return res, &StepError{Step: StepAddress, Err: err}
	}
	res.Address = &addr

	log.Info("employee onboarded",
		zap.String("employee_id", emp.ID),
		zap.String("address_id", addr.ID),
	)
	return res, nil
}
