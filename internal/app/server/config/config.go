package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
	DriverMySQL    = "mysql"
)

type Config struct {
	Env     string
	DB      DB
	Server  Server
	Metrics Metrics
}

type DB struct {
	Driver      string `env:"DB_DRIVER" envDefault:"sqlite3"`
	DatabaseURI string `env:"DATABASE_URI" envDefault:"records.db"`
	// Migrations is a directory with one sub-directory per driver.
	// Empty means the embedded migrations.
	Migrations string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress      string        `env:"RUN_ADDRESS" envDefault:":8080"`
	APIPrefix       string        `env:"API_PREFIX" envDefault:"/api/"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Metrics struct {
	Enabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// Load reads the optional .env files and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{envPath}
	}
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("database_uri", "records.db")
	v.SetDefault("run_address", ":8080")
	v.SetDefault("api_prefix", "/api/")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("metrics_path", "/metrics")

	cfg := &Config{
		Env: v.GetString("app_env"),
		DB: DB{
			Driver:      strings.ToLower(v.GetString("db_driver")),
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			APIPrefix:       v.GetString("api_prefix"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Metrics: Metrics{
			Enabled: v.GetBool("metrics_enabled"),
			Path:    v.GetString("metrics_path"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is Load that panics on an invalid configuration.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite, DriverMySQL:
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}
	if c.DB.DatabaseURI == "" {
		return fmt.Errorf("database_uri must not be empty")
	}
	if c.Server.RunAddress == "" {
		return fmt.Errorf("run_address must not be empty")
	}
	if !strings.HasPrefix(c.Server.APIPrefix, "/") {
		return fmt.Errorf("api_prefix must start with '/'")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}
	return nil
}

// MigrationURL is the golang-migrate database URL for the configured driver.
func (d DB) MigrationURL() string {
	switch d.Driver {
	case DriverSQLite:
		return "sqlite3://" + d.DatabaseURI
	case DriverMySQL:
		return "mysql://" + d.DatabaseURI
	default:
		return d.DatabaseURI
	}
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}
