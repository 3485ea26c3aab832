package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/GoArmGo/BlogApp/internal/handler"
)

// runServer starts the HTTP server and blocks until the context is
// cancelled, then drains in-flight requests.
func (a *App) runServer(ctx context.Context) error {
	router := handler.NewRouter(
		a.userUseCase,
		a.postUseCase,
		a.commentUseCase,
		a.tokens,
		a.Config.RequestTimeout,
		a.logger,
	)

	serverAddr := fmt.Sprintf(":%s", a.Config.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutdown signal received, draining server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.logger.Info("server stopped")
	return nil
}
