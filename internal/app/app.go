package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"slot_game/internal/config"
	"slot_game/pkg/logger"

	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
	// Период очистки лимитеров спина
	limiterCleanupInterval = 10 * time.Minute
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run поднимает HTTP-сервер и блокируется до SIGINT/SIGTERM
func (s *App) Run() error {
	err := config.Load(".env")
	logger.Init()
	defer func() { _ = logger.Sync() }()
	if err != nil {
		logger.Warn("error loading .env file", zap.Error(err))
	}

	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := s.ServiceProvider.Router(ctx)
	s.ServiceProvider.RateLimiter().StartCleanup(limiterCleanupInterval, ctx.Done())

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
