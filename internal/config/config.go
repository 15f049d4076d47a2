package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseURL   string   `envconfig:"DATABASE_URL" required:"true"`
	Addr          string   `envconfig:"ADDR" default:":5000"`
	SessionSecret string   `envconfig:"SESSION_SECRET" default:"default-secret-key-change-in-production"`
	CORSOrigins   []string `envconfig:"CORS_ORIGINS" default:"http://localhost:8000,http://127.0.0.1:8000,http://127.0.0.1:5000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
