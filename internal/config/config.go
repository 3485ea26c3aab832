package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every configuration parameter of the application.
type Config struct {
	DatabaseURL    string        `env:"DATABASE_URL,required"`
	ServerPort     string        `env:"SERVER_PORT" envDefault:"8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Token and password settings. TTL and cost mirror the defaults the API
	// has always used.
	JWTSecretKey string        `env:"JWT_SECRET_KEY,required"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"45m"`
	BcryptCost   int           `env:"BCRYPT_COST" envDefault:"10"`

	// Page size of the main post feed. Listing endpoints are 1-indexed.
	PostsPerPage int `env:"POSTS_PER_PAGE" envDefault:"5"`

	// S3-compatible storage for avatar files (MinIO in development).
	S3Endpoint        string `env:"S3_ENDPOINT,required"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID,required"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY,required"`
	S3UseSSL          bool   `env:"S3_USE_SSL"`
	S3BucketName      string `env:"S3_BUCKET_NAME,required"`
	S3Region          string `env:"S3_REGION,required"`

	RabbitMQ struct {
		URL       string `env:"RABBITMQ_URL,required"`
		QueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"avatar_cleanup_queue"`
	}
}

// LoadConfig loads the configuration from environment variables. In
// development it first merges a local .env file if one exists.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration from environment: %w", err)
	}

	if cfg.PostsPerPage <= 0 {
		cfg.PostsPerPage = 5
	}

	return &cfg, nil
}
