package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/buildwise/smart-estimator/config"
	"github.com/buildwise/smart-estimator/internal/bootstrap"
	"github.com/buildwise/smart-estimator/internal/buildwise/backend"
	"github.com/buildwise/smart-estimator/internal/buildwise/session"
	"github.com/buildwise/smart-estimator/internal/logging"
)

const serviceName = "buildwise-web"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logging.SetBase(logger)

	bootstrap.SetGinMode(cfg.App.Environment)

	sessions, err := session.NewStore(cfg.Session.CacheSize)
	if err != nil {
		logger.Fatal("session store", zap.Error(err))
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:     serviceName,
		Version:         cfg.App.Version,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		SubmitRateLimit: cfg.Server.SubmitRateLimit,
		SubmitRateBurst: cfg.Server.SubmitRateBurst,
		Backend:         backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout),
		Sessions:        sessions,
		Logger:          logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("backend", cfg.Backend.URL),
			zap.String("env", cfg.App.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("stopped")
}
