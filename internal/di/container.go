package di

import (
	"github.com/GoArmGo/BlogApp/internal/adapter/storage/s3"
	"github.com/GoArmGo/BlogApp/internal/app"
	"github.com/GoArmGo/BlogApp/internal/auth"
	"github.com/GoArmGo/BlogApp/internal/config"
	"github.com/GoArmGo/BlogApp/internal/database/client"
	"github.com/GoArmGo/BlogApp/internal/database/storage"
	"github.com/GoArmGo/BlogApp/internal/logger"
	"github.com/GoArmGo/BlogApp/internal/rabbitmq"
	"github.com/GoArmGo/BlogApp/internal/usecase"
)

// BuildApp initializes every dependency and returns the assembled App.
func BuildApp() (*app.App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	userStorage := storage.NewUserStorage(dbClient.Gorm, slogger)
	postStorage := storage.NewPostStorage(dbClient.Gorm, dbClient.DB, slogger)
	commentStorage := storage.NewCommentStorage(dbClient.Gorm, dbClient.DB, slogger)

	fileStorage, err := s3.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	mqClient, err := rabbitmq.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecretKey, cfg.TokenTTL)

	userUseCase := usecase.NewUserUseCase(userStorage, fileStorage, mqClient, hasher, tokens, slogger)
	postUseCase := usecase.NewPostUseCase(postStorage, userStorage, cfg.PostsPerPage, slogger)
	commentUseCase := usecase.NewCommentUseCase(commentStorage, postStorage, userStorage, slogger)

	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		userUseCase,
		postUseCase,
		commentUseCase,
		tokens,
		fileStorage,
		mqClient,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
