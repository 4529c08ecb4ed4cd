package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV"`
	Port         int    `envconfig:"PORT" default:"8000"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`

	// ConnectionString is the full document store endpoint, e.g.
	// mongodb://localhost:27017.
	ConnectionString string `envconfig:"CONNECTION_STRING"`

	// SecretKey signs the credential tokens stored with each user.
	SecretKey string `envconfig:"SECRETKEY"`

	DB struct {
		Name string `envconfig:"DB_NAME" default:"moviesDB"`
	}
	Redis struct {
		Addr     string `envconfig:"REDIS_ADDR"`
		Password string `envconfig:"REDIS_PASSWORD"`
	}
	Session struct {
		TTLMinutes int `envconfig:"SESSION_TTL" default:"60"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
