package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/BlogApp/internal/auth"
	"github.com/GoArmGo/BlogApp/internal/config"
	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/database/client"
	"github.com/GoArmGo/BlogApp/internal/usecase"
)

// App bundles the wired application. It runs either as the HTTP server or
// as the avatar-cleanup worker, selected by the -mode flag.
type App struct {
	Config          *config.Config
	logger          *slog.Logger
	dbClient        *client.Client
	userUseCase     usecase.UserUseCase
	postUseCase     usecase.PostUseCase
	commentUseCase  usecase.CommentUseCase
	tokens          *auth.TokenManager
	fileStorage     ports.FileStorage
	cleanupConsumer ports.AvatarCleanupConsumer
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	userUseCase usecase.UserUseCase,
	postUseCase usecase.PostUseCase,
	commentUseCase usecase.CommentUseCase,
	tokens *auth.TokenManager,
	fileStorage ports.FileStorage,
	cleanupConsumer ports.AvatarCleanupConsumer,
) *App {
	return &App{
		Config:          cfg,
		logger:          logger,
		dbClient:        dbClient,
		userUseCase:     userUseCase,
		postUseCase:     postUseCase,
		commentUseCase:  commentUseCase,
		tokens:          tokens,
		fileStorage:     fileStorage,
		cleanupConsumer: cleanupConsumer,
	}
}

// Logger exposes the main logger for the entrypoint.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run starts the selected mode and blocks until SIGINT/SIGTERM.
func (a *App) Run(ctx context.Context, mode string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting", "mode", mode)

	var err error
	switch mode {
	case "server":
		err = a.runServer(ctx)
	case "worker":
		err = a.runWorker(ctx)
	default:
		err = fmt.Errorf("unknown mode: %s (use 'server' or 'worker')", mode)
	}
	if err != nil {
		return err
	}

	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("error during shutdown", "error", closeErr)
	}

	a.logger.Info("stopped cleanly")
	return nil
}

// Shutdown closes all application resources.
func (a *App) Shutdown() error {
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
	}

	if closer, ok := a.cleanupConsumer.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	return nil
}
