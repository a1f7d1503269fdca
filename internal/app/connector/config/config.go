package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultEnv     = "local"
	defaultTimeout = 30 * time.Second
)

type Config struct {
	Env     string        `mapstructure:"app_env"`
	Timeout time.Duration `mapstructure:"connector_timeout"`
	Strict  bool          `mapstructure:"connector_strict"`
}

// Load загружает конфигурацию коннектора из .env и окружения
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("CONNECTOR_TIMEOUT", defaultTimeout)
	v.SetDefault("CONNECTOR_STRICT", false)

	cfg := &Config{
		Env:     v.GetString("APP_ENV"),
		Timeout: v.GetDuration("CONNECTOR_TIMEOUT"),
		Strict:  v.GetBool("CONNECTOR_STRICT"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("connector_timeout не может быть отрицательным")
	}
	return nil
}
