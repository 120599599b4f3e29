package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-api/internal/auth"
	"clinic-api/internal/config"
	"clinic-api/internal/database"
	"clinic-api/internal/handlers"
	"clinic-api/internal/logger"
	"clinic-api/internal/server"
	"clinic-api/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "clinic-api"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg, zl)
	if err != nil {
		zl.Fatal("connect database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zl.Fatal("migrate database", zap.Error(err))
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	h := handlers.NewHandler(store.New(db), tokens, zl, cfg.BcryptCost)
	router := handlers.NewRouter(h, cfg.CORSAllowedOrigins)

	srv := server.New(cfg.ListenAddr, router, zl)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zl.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			zl.Error("http server stopped", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		zl.Warn("graceful shutdown failed", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		zl.Warn("close database", zap.Error(err))
	}
}
