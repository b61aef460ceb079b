package setting

import (
	"context"

	"github.com/vbasilioo/workly-web/internal/lifecycle"
	settingerrors "github.com/vbasilioo/workly-web/internal/setting/errors"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"
	"github.com/vbasilioo/workly-web/internal/store"

	"go.uber.org/zap"
)

const Resource = "setting"

var defaultsMessage = store.Message{
	Success: "Default settings initialized successfully",
	Failure: "Error initializing default settings",
}

//go:generate mockgen -source=setting_service.go -destination=mock/setting_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]Setting, error)
	State() store.State
	GetByID(ctx context.Context, id string) (Setting, error)
	Create(ctx context.Context, req CreateSettingRequest) (Setting, error)
	Update(ctx context.Context, id string, req UpdateSettingRequest) (Setting, error)
	Deactivate(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	InitializeDefaults(ctx context.Context) (DefaultsResult, error)
}

type Provider interface {
	Settings(ctx context.Context) (Service, error)
}

type service struct {
	client   Client
	store    *store.Store[Setting]
	policy   lifecycle.Policy
	defaults []CreateSettingRequest
	logger   *zap.Logger
}

// NewService uses the embedded defaults; they are validated at startup by Defaults.
func NewService(client Client, opts store.Options, defaults []CreateSettingRequest, logger ...*zap.Logger) Service {
	l := zap.L().Named("setting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("setting.service")
	}
	return &service{
		client:   client,
		store:    store.FromOptions[Setting](Resource, client.List, store.DefaultMessages("Setting"), opts),
		policy:   lifecycle.For(lifecycle.KindSetting),
		defaults: defaults,
		logger:   l,
	}
}

func (s *service) List(ctx context.Context) ([]Setting, error) {
	return s.store.Load(ctx)
}

func (s *service) State() store.State {
	return s.store.State()
}

func (s *service) GetByID(ctx context.Context, id string) (Setting, error) {
	return s.client.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateSettingRequest) (Setting, error) {
	if err := req.ApplyForm(); err != nil {
		return Setting{}, err
	}
	if err := req.Validate(); err != nil {
		return Setting{}, err
	}

	created, err := store.Mutate(ctx, s.store, store.OpCreate, func(ctx context.Context) (Setting, error) {
		return s.client.Create(ctx, req)
	})
	if err != nil {
		return Setting{}, err
	}
	contextutil.GetLogger(ctx, s.logger).Info("setting created",
		zap.String("setting_id", created.ID),
		zap.String("key", created.Key),
	)
	return created, nil
}

// Update rejects a payload whose key differs from the stored one before
// anything is sent.
func (s *service) Update(ctx context.Context, id string, req UpdateSettingRequest) (Setting, error) {
	if err := checkID(id); err != nil {
		return Setting{}, err
	}
	if err := req.ApplyForm(); err != nil {
		return Setting{}, err
	}
	if err := req.Validate(); err != nil {
		return Setting{}, err
	}

	if req.Key != nil {
		current, err := s.client.GetByID(ctx, id)
		if err != nil {
			return Setting{}, err
		}
		if *req.Key != current.Key {
			contextutil.GetLogger(ctx, s.logger).Debug("setting key change rejected",
				zap.String("setting_id", id),
				zap.String("key", current.Key),
			)
			return Setting{}, settingerrors.ErrKeyImmutable
		}
	}

	return store.Mutate(ctx, s.store, store.OpUpdate, func(ctx context.Context) (Setting, error) {
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

// InitializeDefaults creates the missing default settings and restores the
// inactive ones. The list is refetched once, after the last call.
func (s *service) InitializeDefaults(ctx context.Context) (DefaultsResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	current, err := s.store.Load(ctx)
	if err != nil {
		return DefaultsResult{}, err
	}
	byKey := make(map[string]Setting, len(current))
	for _, st := range current {
		byKey[st.Key] = st
	}

	var partial DefaultsResult
	res, err := store.MutateWith(ctx, s.store, store.OpCreate, defaultsMessage, func(ctx context.Context) (DefaultsResult, error) {
		for _, d := range s.defaults {
			existing, ok := byKey[d.Key]
			switch {
			case !ok:
				if _, err := s.client.Create(ctx, d); err != nil {
					return partial, err
				}
				partial.Created = append(partial.Created, d.Key)
			case !existing.IsActive:
				if err := s.client.Restore(ctx, existing.ID); err != nil {
					return partial, err
				}
				partial.Restored = append(partial.Restored, d.Key)
			}
		}
		return partial, nil
	})
	if err != nil {
		if len(partial.Created)+len(partial.Restored) > 0 {
			s.store.Invalidate(ctx)
		}
		log.Warn("initialize default settings failed",
			zap.Strings("created", partial.Created),
			zap.Strings("restored", partial.Restored),
			zap.Error(err),
		)
		return partial, err
	}

	log.Info("default settings initialized",
		zap.Int("created", len(res.Created)),
		zap.Int("restored", len(res.Restored)),
	)
	return res, nil
}
