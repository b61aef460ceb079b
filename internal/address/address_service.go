package address

import (
	"context"

	"github.com/vbasilioo/workly-web/internal/lifecycle"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"
	"github.com/vbasilioo/workly-web/internal/store"

	"go.uber.org/zap"
)

const Resource = "address"

var withEmployeeMessage = store.Message{
	Success: "Address registered with employee successfully",
	Failure: "Error registering address with employee",
}

//go:generate mockgen -source=address_service.go -destination=mock/address_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]Address, error)
	State() store.State
	GetByID(ctx context.Context, id string) (Address, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Address, error)
	Create(ctx context.Context, req CreateAddressRequest) (Address, error)
	CreateWithEmployee(ctx context.Context, req CreateAddressWithEmployeeRequest) (Address, error)
	Update(ctx context.Context, id string, req UpdateAddressRequest) (Address, error)
	Deactivate(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}

type Provider interface {
	Addresses(ctx context.Context) (Service, error)
}

type service struct {
	client Client
	store  *store.Store[Address]
	policy lifecycle.Policy
	logger *zap.Logger
}

func NewService(client Client, opts store.Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("address.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("address.service")
	}
	return &service{
		client: client,
		store:  store.FromOptions[Address](Resource, client.List, store.DefaultMessages("Address"), opts),
		policy: lifecycle.For(lifecycle.KindAddress),
		logger: l,
	}
}

func (s *service) List(ctx context.Context) ([]Address, error) {
	return s.store.Load(ctx)
}

func (s *service) State() store.State {
	return s.store.State()
}

func (s *service) GetByID(ctx context.Context, id string) (Address, error) {
	return s.client.GetByID(ctx, id)
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (Address, error) {
	return s.client.GetByEmployeeID(ctx, employeeID)
}

func (s *service) Create(ctx context.Context, req CreateAddressRequest) (Address, error) {
	if err := req.Validate(); err != nil {
		return Address{}, err
	}

	a, err := store.Mutate(ctx, s.store, store.OpCreate, func(ctx context.Context) (Address, error) {
		return s.client.Create(ctx, req)
	})
	if err != nil {
		return Address{}, err
	}
	contextutil.GetLogger(ctx, s.logger).Info("address created", zap.String("address_id", a.ID))
	return a, nil
}

// CreateWithEmployee rejects a missing or malformed employee id before calling the API.
func (s *service) CreateWithEmployee(ctx context.Context, req CreateAddressWithEmployeeRequest) (Address, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := req.Validate(); err != nil {
		log.Debug("create address with employee rejected", zap.Error(err))
		return Address{}, err
	}

	a, err := store.MutateWith(ctx, s.store, store.OpCreate, withEmployeeMessage, func(ctx context.Context) (Address, error) {
		return s.client.CreateWithEmployee(ctx, req)
	})
	if err != nil {
		return Address{}, err
	}
	log.Info("address created for employee",
		zap.String("address_id", a.ID),
		zap.String("employee_id", req.EmployeeID),
	)
	return a, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAddressRequest) (Address, error) {
	if err := checkID(id); err != nil {
		return Address{}, err
	}
	if err := req.Validate(); err != nil {
		return Address{}, err
	}

	return store.Mutate(ctx, s.store, store.OpUpdate, func(ctx context.Context) (Address, error) {
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
	return store.Exec(ctx, s.store, op, func(ctx context.Context) error {
		return call(ctx, id)
	})
}
