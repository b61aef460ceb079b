// Package app wires the BFF: infrastructure, per-user workspaces and every
// route group under /api/v1.
package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/vbasilioo/workly-web/internal/address"
	"github.com/vbasilioo/workly-web/internal/apiclient"
	"github.com/vbasilioo/workly-web/internal/config"
	"github.com/vbasilioo/workly-web/internal/dashboard"
	"github.com/vbasilioo/workly-web/internal/employee"
	"github.com/vbasilioo/workly-web/internal/middleware"
	"github.com/vbasilioo/workly-web/internal/notify"
	"github.com/vbasilioo/workly-web/internal/onboarding"
	"github.com/vbasilioo/workly-web/internal/preference"
	"github.com/vbasilioo/workly-web/internal/rbac"
	"github.com/vbasilioo/workly-web/internal/session"
	"github.com/vbasilioo/workly-web/internal/setting"
	"github.com/vbasilioo/workly-web/internal/shared/connection"
	"github.com/vbasilioo/workly-web/internal/store"
	"github.com/vbasilioo/workly-web/internal/user"
	"github.com/vbasilioo/workly-web/internal/workspace"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

const connectRetries = 5

// App owns the connections opened by BuildApp.
type App struct {
	Workspaces *workspace.Registry
	Registry   *prometheus.Registry

	rdb    *redis.Client
	db     *gorm.DB
	logger *zap.Logger
}

// Close releases the connections. Safe to call on a partially built App.
func (a *App) Close() error {
	var errs []error
	if a.rdb != nil {
		errs = append(errs, a.rdb.Close())
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}

// BuildApp connects the optional backends and registers every route on router.
func BuildApp(ctx context.Context, router *gin.Engine, cfg *config.Config, logger *zap.Logger) (*App, error) {
	log := logger.Named("app")
	a := &App{Registry: prometheus.NewRegistry(), logger: log}
	a.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 1. Infrastructure
	var cache store.Cache = store.NewMemoryCache()
	if cfg.CacheBackend == config.CacheBackendRedis {
		rdb, err := connection.ConnectRedisWithRetry(ctx, cfg.RedisAddr, connectRetries, log)
		if err != nil {
			return a, err
		}
		a.rdb = rdb
		cache = store.NewRedisCache(rdb)
	}

	if cfg.PreferencesEnabled() {
		db, err := connection.ConnectGORMWithRetry(ctx, connection.PostgresConfig{
			Host:     cfg.DBHost,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			Port:     cfg.DBPort,
			SSLMode:  cfg.DBSSLMode,
		}, connectRetries, log)
		if err != nil {
			return a, err
		}
		if err := preference.Migrate(ctx, db); err != nil {
			return a, err
		}
		a.db = db
	}

	// 2. Notifications
	notifiers := notify.Multi{notify.NewLogNotifier(logger)}
	var queue notify.Drainer
	if a.rdb != nil {
		q := notify.NewRedisQueue(a.rdb, cfg.NotificationTTL, logger)
		notifiers = append(notifiers, q)
		queue = q
	}

	// 3. Workspaces
	defaults, err := setting.Defaults()
	if err != nil {
		return a, err
	}

	api := apiclient.New(apiclient.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Breaker: apiclient.BreakerConfig{
			FailureThreshold: cfg.BreakerFailureThreshold,
			OpenTimeout:      cfg.BreakerOpenTimeout,
		},
	}, session.ContextTokenSource{}, logger)

	a.Workspaces = workspace.NewRegistry(workspace.Config{
		API:             api,
		Cache:           cache,
		TTL:             cfg.CacheTTL,
		Notifier:        notifiers,
		Metrics:         store.NewMetrics(a.Registry),
		SettingDefaults: defaults,
	}, logger)

	rbacService, err := rbac.NewService(logger)
	if err != nil {
		return a, err
	}

	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		log.Warn("unknown locale, falling back to pt-BR", zap.String("locale", cfg.Locale), zap.Error(err))
		locale = language.BrazilianPortuguese
	}

	var idempotency gin.HandlerFunc
	if a.rdb != nil {
		idempotency = middleware.Idempotency(a.rdb, cfg.CacheTTL, logger)
	}

	// 4. Routes
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "breaker": api.BreakerState().String()})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1",
		middleware.RequestID(),
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ContextLogger(logger),
	)
	{
		employee.RegisterRoutes(v1, employee.NewHandler(a.Workspaces, locale, logger), rbacService, idempotency)
		address.RegisterRoutes(v1, address.NewHandler(a.Workspaces, locale, logger), rbacService, idempotency)
		setting.RegisterRoutes(v1, setting.NewHandler(a.Workspaces, locale, logger), rbacService, idempotency)
		user.RegisterRoutes(v1, user.NewHandler(a.Workspaces, locale, logger), rbacService, idempotency)

		onboarding.RegisterRoutes(v1,
			onboarding.NewHandler(onboarding.NewService(a.Workspaces, a.Workspaces, logger), logger),
			rbacService, idempotency)
		dashboard.RegisterRoutes(v1, dashboard.NewHandler(dashboard.NewService(a.Workspaces, logger), logger), rbacService)
		notify.RegisterRoutes(v1, notify.NewHandler(queue, logger), rbacService)
		rbac.RegisterRoutes(v1, rbac.NewHandler(rbacService, logger))

		if a.db != nil {
			prefs := preference.NewService(preference.NewRepository(a.db), logger)
			preference.RegisterRoutes(v1, preference.NewHandler(prefs, logger), rbacService)
		}
	}

	log.Info("routes registered",
		zap.String("api", cfg.APIBaseURL),
		zap.String("cache", cfg.CacheBackend),
		zap.Bool("preferences", a.db != nil),
	)
	return a, nil
}
