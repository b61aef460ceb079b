// Package store keeps one resource kind's list for one cache scope and
// tracks the mutations applied to it. Mutations never touch the cached list:
// a successful mutation invalidates it and the next Load refetches.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/vbasilioo/workly-web/internal/notify"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Op string

const (
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpRestore Op = "restore"
)

// State mirrors the flags a page uses to show spinners and disable buttons.
type State struct {
	IsLoading   bool `json:"isLoading"`
	IsCreating  bool `json:"isCreating"`
	IsUpdating  bool `json:"isUpdating"`
	IsDeleting  bool `json:"isDeleting"`
	IsRestoring bool `json:"isRestoring"`
	// Stale is set when the last load failed and the list shown is the previous one.
	Stale bool `json:"stale"`
}

type Message struct {
	Success string
	Failure string
}

type Messages map[Op]Message

// DefaultMessages builds the toasts of the four standard operations.
// Delete reads as a deactivation because only users are removed for good.
func DefaultMessages(label string) Messages {
	lower := strings.ToLower(label)
	return Messages{
		OpCreate:  {Success: label + " created successfully", Failure: "Error creating " + lower},
		OpUpdate:  {Success: label + " updated successfully", Failure: "Error updating " + lower},
		OpDelete:  {Success: label + " deactivated successfully", Failure: "Error deactivating " + lower},
		OpRestore: {Success: label + " restored successfully", Failure: "Error restoring " + lower},
	}
}

type FetchFunc[T any] func(ctx context.Context) ([]T, error)

type Config[T any] struct {
	Resource string
	// Scope isolates caches, usually the signed-in user id.
	Scope    string
	Fetch    FetchFunc[T]
	Cache    Cache
	TTL      time.Duration
	Notifier notify.Notifier
	Messages Messages
	Metrics  *Metrics
	Logger   *zap.Logger
}

type Store[T any] struct {
	resource string
	scope    string
	key      string
	fetch    FetchFunc[T]
	cache    Cache
	ttl      time.Duration
	notifier notify.Notifier
	messages Messages
	metrics  *Metrics
	logger   *zap.Logger
	sf       singleflight.Group

	mu sync.Mutex
	// generation grows on every invalidation; fetches started under an older
	// generation never write the cache.
	generation uint64
	// dirty is set when an invalidation could not reach the cache.
	dirty   bool
	last    []T
	hasLast bool
	stale   bool
	loading int
	pending map[Op]int
}

func New[T any](cfg Config[T]) *Store[T] {
	l := zap.L().Named("store")
	if cfg.Logger != nil {
		l = cfg.Logger.Named("store")
	}
	if cfg.Cache == nil {
		cfg.Cache = NewMemoryCache()
	}
	if cfg.Messages == nil {
		cfg.Messages = DefaultMessages(cfg.Resource)
	}
	return &Store[T]{
		resource: cfg.Resource,
		scope:    cfg.Scope,
		key:      CacheKey(cfg.Scope, cfg.Resource),
		fetch:    cfg.Fetch,
		cache:    cfg.Cache,
		ttl:      cfg.TTL,
		notifier: cfg.Notifier,
		messages: cfg.Messages,
		metrics:  cfg.Metrics,
		logger:   l.With(zap.String("resource", cfg.Resource), zap.String("scope", cfg.Scope)),
		pending:  make(map[Op]int),
	}
}

func (s *Store[T]) Resource() string { return s.resource }

func (s *Store[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		IsLoading:   s.loading > 0,
		IsCreating:  s.pending[OpCreate] > 0,
		IsUpdating:  s.pending[OpUpdate] > 0,
		IsDeleting:  s.pending[OpDelete] > 0,
		IsRestoring: s.pending[OpRestore] > 0,
		Stale:       s.stale,
	}
}

// Load returns the cached list or refetches it. When a refetch fails the
// last loaded list, if any, is returned together with the error.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	s.mu.Lock()
	gen, dirty := s.generation, s.dirty
	s.mu.Unlock()

	if !dirty {
		items, err := s.readCache(ctx)
		switch {
		case err == nil:
			s.metrics.cacheHit(s.resource)
			return items, nil
		case !errors.Is(err, ErrCacheMiss):
			log.Warn("store cache read failed", zap.String("key", s.key), zap.Error(err))
		}
	}

	// the shared fetch outlives any single caller; request values stay attached
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.sf.DoChan(fmt.Sprintf("%s#%d", s.key, gen), func() (interface{}, error) {
		return s.refetch(fetchCtx, gen)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		log.Debug("store load abandoned by caller", zap.Error(ctx.Err()))
		return nil, ctx.Err()
	}

	v, err, shared := res.Val, res.Err, res.Shared
	if err != nil {
		s.metrics.loadFailed(s.resource)

		s.mu.Lock()
		s.stale = true
		last, hasLast := slices.Clone(s.last), s.hasLast
		s.mu.Unlock()

		log.Warn("store load failed",
			zap.Bool("serving_stale", hasLast),
			zap.Error(err),
		)
		if hasLast {
			return last, err
		}
		return nil, err
	}

	log.Debug("store loaded", zap.Bool("shared", shared))
	return slices.Clone(v.([]T)), nil
}

func (s *Store[T]) readCache(ctx context.Context) ([]T, error) {
	raw, err := s.cache.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("store: decode cached %s: %w", s.resource, err)
	}
	return items, nil
}

func (s *Store[T]) refetch(ctx context.Context, gen uint64) ([]T, error) {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading--
		s.mu.Unlock()
	}()

	s.metrics.refetch(s.resource)
	items, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("store: encode %s: %w", s.resource, err)
	}

	// cache writes and invalidations are serialized on mu so a fill can
	// never land after the invalidation that superseded it
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return items, nil
	}
	s.last = items
	s.hasLast = true
	s.stale = false
	if err := s.cache.Set(ctx, s.key, payload, s.ttl); err != nil {
		s.logger.Warn("store cache write failed", zap.String("key", s.key), zap.Error(err))
		return items, nil
	}
	s.dirty = false
	return items, nil
}

// Invalidate discards the cached list. The next Load refetches.
func (s *Store[T]) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if err := s.cache.Delete(ctx, s.key); err != nil {
		s.dirty = true
		s.logger.Warn("store cache invalidation failed", zap.String("key", s.key), zap.Error(err))
		return
	}
	s.dirty = false
}

func (s *Store[T]) begin(op Op) {
	s.mu.Lock()
	s.pending[op]++
	s.mu.Unlock()
}

func (s *Store[T]) end(op Op) {
	s.mu.Lock()
	s.pending[op]--
	s.mu.Unlock()
}

func (s *Store[T]) notify(ctx context.Context, op Op, msg Message, err error) {
	n := notify.Notification{
		Level:    notify.LevelSuccess,
		Message:  msg.Success,
		Resource: s.resource,
		Op:       string(op),
		UserID:   s.scope,
	}
	if err != nil {
		n.Level = notify.LevelError
		n.Message = failureMessage(msg.Failure, err)
	}
	if s.notifier == nil {
		return
	}
	if nerr := s.notifier.Notify(ctx, n); nerr != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("store notification failed", zap.String("op", string(op)), zap.Error(nerr))
	}
}

func failureMessage(prefix string, err error) string {
	detail := apperror.ToHTTP(err).Message
	if prefix == "" {
		return detail
	}
	return prefix + ": " + detail
}

// Mutate runs fn as op. On success the list is invalidated before the success
// notification goes out; on failure an error notification is sent, the cache
// is left alone and the error is returned unchanged.
func Mutate[T, R any](ctx context.Context, s *Store[T], op Op, fn func(ctx context.Context) (R, error)) (R, error) {
	return MutateWith(ctx, s, op, s.messages[op], fn)
}

// MutateWith is Mutate with toasts other than the store's defaults for op.
func MutateWith[T, R any](ctx context.Context, s *Store[T], op Op, msg Message, fn func(ctx context.Context) (R, error)) (R, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("op", string(op)))

	s.begin(op)
	defer s.end(op)

	out, err := fn(ctx)
	s.metrics.mutation(s.resource, op, err)
	if err != nil {
		log.Warn("store mutation failed", zap.Error(err))
		s.notify(ctx, op, msg, err)
		return out, err
	}

	s.Invalidate(ctx)
	s.notify(ctx, op, msg, nil)
	log.Debug("store mutation applied")
	return out, nil
}

// Exec is Mutate for operations without a result.
func Exec[T any](ctx context.Context, s *Store[T], op Op, fn func(ctx context.Context) error) error {
	_, err := Mutate(ctx, s, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// Options carries the collaborators every resource store of one scope shares.
type Options struct {
	Scope    string
	Cache    Cache
	TTL      time.Duration
	Notifier notify.Notifier
	Metrics  *Metrics
	Logger   *zap.Logger
}

func FromOptions[T any](resource string, fetch FetchFunc[T], messages Messages, o Options) *Store[T] {
	return New(Config[T]{
		Resource: resource,
		Scope:    o.Scope,
		Fetch:    fetch,
		Cache:    o.Cache,
		TTL:      o.TTL,
		Notifier: o.Notifier,
		Messages: messages,
		Metrics:  o.Metrics,
		Logger:   o.Logger,
	})
}
