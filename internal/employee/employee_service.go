package employee

import (
	"context"

	"github.com/vbasilioo/workly-web/internal/lifecycle"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"
	"github.com/vbasilioo/workly-web/internal/store"

	"go.uber.org/zap"
)

const Resource = "employee"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]Employee, error)
	State() store.State
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Deactivate(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}

// Provider resolves the employee service of the caller's workspace.
type Provider interface {
	Employees(ctx context.Context) (Service, error)
}

type service struct {
	client Client
	store  *store.Store[Employee]
	policy lifecycle.Policy
	logger *zap.Logger
}

func NewService(client Client, opts store.Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		client: client,
		store:  store.FromOptions[Employee](Resource, client.List, store.DefaultMessages("Employee"), opts),
		policy: lifecycle.For(lifecycle.KindEmployee),
		logger: l,
	}
}

func (s *service) List(ctx context.Context) ([]Employee, error) {
	return s.store.Load(ctx)
}

func (s *service) State() store.State {
	return s.store.State()
}

func (s *service) GetByID(ctx context.Context, id string) (Employee, error) {
	return s.client.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := req.Validate(); err != nil {
		log.Debug("create employee rejected", zap.Error(err))
		return Employee{}, err
	}

	e, err := store.Mutate(ctx, s.store, store.OpCreate, func(ctx context.Context) (Employee, error) {
		return s.client.Create(ctx, req)
	})
	if err != nil {
		return Employee{}, err
	}
	log.Info("employee created", zap.String("employee_id", e.ID))
	return e, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error) {
	if err := checkID(id); err != nil {
		return Employee{}, err
	}
	if err := req.Validate(); err != nil {
		return Employee{}, err
	}

	return store.Mutate(ctx, s.store, store.OpUpdate, func(ctx context.Context) (Employee, error) {
		return s.client.Update(ctx, id, req)
	})
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	return s.transition(ctx, id, lifecycle.Deactivate)
}

func (s *service) Restore(ctx context.Context, id string) error {
	return s.transition(ctx, id, lifecycle.Restore)
}

func (s *service) transition(ctx context.Context, id string, t lifecycle.Transition) error {
	if err := s.policy.Allow(t); err != nil {
		return err
	}
	if err := checkID(id); err != nil {
		return err
	}

	op, call := store.OpDelete, s.client.Delete
	if t == lifecycle.Restore {
		op, call = store.OpRestore, s.client.Restore
	}
	err := store.Exec(ctx, s.store, op, func(ctx context.Context) error {
		return call(ctx, id)
	})
	if err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("employee lifecycle changed",
		zap.String("employee_id", id),
		zap.String("transition", string(t)),
	)
	return nil
}
