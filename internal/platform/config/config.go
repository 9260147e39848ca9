// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported values for STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root configuration of the API server.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Store    StoreConfig
	Mongo    MongoConfig
	Database DatabaseConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Registry RegistryConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT"                    envDefault:"5000"`
	Env             string        `env:"APP_ENV"                 envDefault:"dev"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT"     envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT"    envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

type LogConfig struct {
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Driver         string        `env:"STORE_DRIVER"          envDefault:"mongo"`
	RunMigrations  bool          `env:"RUN_MIGRATIONS"        envDefault:"true"`
	ConnectTimeout time.Duration `env:"STORE_CONNECT_TIMEOUT" envDefault:"60s"`
}

type MongoConfig struct {
	URI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017/digital_mechanic_db"`
	// Database overrides the database named in the URI path.
	Database string `env:"MONGO_DATABASE"`
}

// DatabaseConfig holds the settings of the relational backends (postgres, sqlite).
type DatabaseConfig struct {
	Host       string `env:"DB_HOST"     envDefault:"localhost"`
	Port       string `env:"DB_PORT"     envDefault:"5432"`
	User       string `env:"DB_USER"     envDefault:"postgres"`
	Password   string `env:"DB_PASSWORD" envDefault:"postgres"`
	Name       string `env:"DB_NAME"     envDefault:"digital_mechanic"`
	SSLMode    string `env:"DB_SSLMODE"  envDefault:"disable"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"digital_mechanic.db"`
}

// RedisConfig configures the optional vehicle list cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB"       envDefault:"0"`
	CacheTTL time.Duration `env:"CACHE_TTL"      envDefault:"5m"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type RegistryConfig struct {
	// EnforceOwner rejects vehicles whose owner id does not reference an existing user.
	EnforceOwner bool `env:"REGISTRY_ENFORCE_OWNER" envDefault:"false"`
}

// Load reads an optional .env file and then parses the environment.
func Load() (*Config, error) {
	// .env is optional; the real environment always wins.
	_ = godotenv.Load()
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be expressed with struct tags.
func (c *Config) Validate() error {
	if !slices.Contains([]string{DriverMongo, DriverPostgres, DriverSQLite}, c.Store.Driver) {
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

// IsDevelopment reports whether the server runs in the dev environment.
func (c *ServerConfig) IsDevelopment() bool {
	return c.Env == "dev"
}

// Address returns the listen address for net/http.
func (c *ServerConfig) Address() string {
	return ":" + c.Port
}
