package user

import (
	"context"

	"github.com/vbasilioo/workly-web/internal/lifecycle"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"
	"github.com/vbasilioo/workly-web/internal/store"
	usererrors "github.com/vbasilioo/workly-web/internal/user/errors"

	"go.uber.org/zap"
)

const Resource = "user"

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]User, error)
	State() store.State
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (User, error)
	// Delete is permanent and requires confirmed to be true.
	Delete(ctx context.Context, id string, confirmed bool) error
}

type Provider interface {
	Users(ctx context.Context) (Service, error)
}

type service struct {
	client Client
	store  *store.Store[User]
	policy lifecycle.Policy
	logger *zap.Logger
}

func messages() store.Messages {
	m := store.DefaultMessages("User")
	m[store.OpDelete] = store.Message{Success: "User deleted successfully", Failure: "Error deleting user"}
	delete(m, store.OpRestore)
	return m
}

func NewService(client Client, opts store.Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		client: client,
		store:  store.FromOptions[User](Resource, client.List, messages(), opts),
		policy: lifecycle.For(lifecycle.KindUser),
		logger: l,
	}
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.store.Load(ctx)
}

func (s *service) State() store.State {
	return s.store.State()
}

func (s *service) GetByID(ctx context.Context, id string) (User, error) {
	return s.client.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	if err := req.Validate(); err != nil {
		return User{}, err
	}

	u, err := store.Mutate(ctx, s.store, store.OpCreate, func(ctx context.Context) (User, error) {
		return s.client.Create(ctx, req)
	})
	if err != nil {
		return User{}, err
	}
	contextutil.GetLogger(ctx, s.logger).Info("user created",
		zap.String("target_user_id", u.ID),
		zap.String("role", u.Role),
	)
	return u, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (User, error) {
	if err := checkID(id); err != nil {
		return User{}, err
	}
	if err := req.Validate(); err != nil {
		return User{}, err
	}

	return store.Mutate(ctx, s.store, store.OpUpdate, func(ctx context.Context) (User, error) {
		return s.client.Update(ctx, id, req)
	})
}

func (s *service) Delete(ctx context.Context, id string, confirmed bool) error {
	if err := s.policy.AllowHardDelete(); err != nil {
		return err
	}
	if err := checkID(id); err != nil {
		return err
	}
	if !confirmed {
		return usererrors.ErrDeleteNotConfirmed
	}
	if id == contextutil.GetUserID(ctx) {
		return usererrors.ErrCannotDeleteSelf
	}

	err := store.Exec(ctx, s.store, store.OpDelete, func(ctx context.Context) error {
		return s.client.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	contextutil.GetLogger(ctx, s.logger).Info("user deleted", zap.String("target_user_id", id))
	return nil
}
