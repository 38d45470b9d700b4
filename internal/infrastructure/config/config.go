package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// devJWTSecret is the insecure fallback applied only outside production.
	// Callers must log loudly when it is in effect.
	devJWTSecret = "dev-secret-key"

	devMongoURI = "mongodb://localhost:27017"
	devMongoDB  = "sweet_shop"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URL"`
	Database string `env:"MONGODB_DB_NAME"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Production reports whether the process runs in production mode.
func (c *Config) Production() bool {
	return c.Env == EnvProduction
}

// UsingDevSecret reports whether the insecure development signing secret is
// in effect.
func (c *Config) UsingDevSecret() bool {
	return c.JWTSecret == devJWTSecret
}

// Load reads configuration from environment variables. In production mode the
// signing secret and Mongo settings must be set explicitly; development mode
// falls back to local defaults, which the caller is expected to log.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Production() {
		if cfg.JWTSecret == "" {
			return nil, errors.New("config: JWT_SECRET is not set in production")
		}
		if cfg.Mongo.URI == "" {
			return nil, errors.New("config: MONGODB_URL is not set in production")
		}
		if cfg.Mongo.Database == "" {
			return nil, errors.New("config: MONGODB_DB_NAME is not set in production")
		}
		return &cfg, nil
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = devMongoURI
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = devMongoDB
	}
	return &cfg, nil
}
