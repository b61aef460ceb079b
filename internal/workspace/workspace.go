// Package workspace gives every signed-in user their own set of resource
// services. Stores are scoped by user id so one user's cached lists and
// toasts never reach another.
package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/vbasilioo/workly-web/internal/address"
	"github.com/vbasilioo/workly-web/internal/apiclient"
	"github.com/vbasilioo/workly-web/internal/employee"
	"github.com/vbasilioo/workly-web/internal/notify"
	"github.com/vbasilioo/workly-web/internal/setting"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"
	"github.com/vbasilioo/workly-web/internal/store"
	"github.com/vbasilioo/workly-web/internal/user"

	"go.uber.org/zap"
)

type Workspace struct {
	UserID    string
	Employees employee.Service
	Addresses address.Service
	Settings  setting.Service
	Users     user.Service
}

type Config struct {
	API             *apiclient.Client
	Cache           store.Cache
	TTL             time.Duration
	Notifier        notify.Notifier
	Metrics         *store.Metrics
	SettingDefaults []setting.CreateSettingRequest
}

// Registry builds workspaces lazily and keeps them for the process lifetime.
type Registry struct {
	cfg     Config
	clients clients
	logger  *zap.Logger

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

type clients struct {
	employees employee.Client
	addresses address.Client
	settings  setting.Client
	users     user.Client
}

func NewRegistry(cfg Config, logger ...*zap.Logger) *Registry {
	l := zap.L().Named("workspace")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workspace")
	}
	return &Registry{
		cfg: cfg,
		clients: clients{
			employees: employee.NewClient(cfg.API),
			addresses: address.NewClient(cfg.API),
			settings:  setting.NewClient(cfg.API),
			users:     user.NewClient(cfg.API),
		},
		logger:     l,
		workspaces: make(map[string]*Workspace),
	}
}

// Get returns the workspace of the user in ctx.
func (r *Registry) Get(ctx context.Context) (*Workspace, error) {
	userID := contextutil.GetUserID(ctx)
	if userID == "" {
		return nil, apperror.ErrUnauthorized
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if ws, ok := r.workspaces[userID]; ok {
		return ws, nil
	}

	ws := r.build(userID)
	r.workspaces[userID] = ws
	r.logger.Debug("workspace created", zap.String("user_id", userID), zap.Int("workspaces", len(r.workspaces)))
	return ws, nil
}

func (r *Registry) build(userID string) *Workspace {
	opts := store.Options{
		Scope:    userID,
		Cache:    r.cfg.Cache,
		TTL:      r.cfg.TTL,
		Notifier: r.cfg.Notifier,
		Metrics:  r.cfg.Metrics,
		Logger:   r.logger,
	}
	return &Workspace{
		UserID:    userID,
		Employees: employee.NewService(r.clients.employees, opts, r.logger),
		Addresses: address.NewService(r.clients.addresses, opts, r.logger),
		Settings:  setting.NewService(r.clients.settings, opts, r.cfg.SettingDefaults, r.logger),
		Users:     user.NewService(r.clients.users, opts, r.logger),
	}
}

// Len reports how many workspaces are live.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

func (r *Registry) Employees(ctx context.Context) (employee.Service, error) {
	ws, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ws.Employees, nil
}

func (r *Registry) Addresses(ctx context.Context) (address.Service, error) {
	ws, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ws.Addresses, nil
}

func (r *Registry) Settings(ctx context.Context) (setting.Service, error) {
	ws, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ws.Settings, nil
}

func (r *Registry) Users(ctx context.Context) (user.Service, error) {
	ws, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ws.Users, nil
}

var (
	_ employee.Provider = (*Registry)(nil)
	_ address.Provider  = (*Registry)(nil)
	_ setting.Provider  = (*Registry)(nil)
	_ user.Provider     = (*Registry)(nil)
)
