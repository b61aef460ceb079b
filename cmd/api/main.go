package main

import (
	"context"

	"github.com/vbasilioo/workly-web/internal/app"
	"github.com/vbasilioo/workly-web/internal/bootstrap"
	"github.com/vbasilioo/workly-web/internal/config"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	application, err := app.BuildApp(context.Background(), r, cfg, logger)
	if err != nil {
		_ = application.Close()
		logger.Fatal("build app failed", zap.Error(err))
	}

	err = bootstrap.StartHTTPServer(r, bootstrap.DefaultServerConfig("api", cfg.Port), func(context.Context) {
		if err := application.Close(); err != nil {
			logger.Warn("close connections failed", zap.Error(err))
		}
	})
	if err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	build := zap.NewDevelopment
	if cfg.IsProduction() {
		build = zap.NewProduction
	}
	logger, err := build()
	if err != nil {
		panic(err)
	}
	return logger
}
