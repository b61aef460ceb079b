// Command mockapi serves an in-memory Workly resource API for local development.
package main

import (
	"github.com/vbasilioo/workly-web/internal/bootstrap"
	"github.com/vbasilioo/workly-web/internal/config"
	"github.com/vbasilioo/workly-web/internal/mockapi"
	"github.com/vbasilioo/workly-web/internal/setting"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	seed, err := mockapi.DefaultSeed()
	if err != nil {
		logger.Fatal("load seed failed", zap.Error(err))
	}
	defaults, err := setting.Defaults()
	if err != nil {
		logger.Fatal("load default settings failed", zap.Error(err))
	}

	srv, err := mockapi.New(mockapi.Config{
		JWTSecret: cfg.JWTSecret,
		Seed:      seed,
		Settings:  defaults,
	}, logger)
	if err != nil {
		logger.Fatal("build mock api failed", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	srv.Register(r)

	if err := bootstrap.StartHTTPServer(r, bootstrap.DefaultServerConfig("mockapi", cfg.MockAPIPort)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
