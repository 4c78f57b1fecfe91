package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Store StoreConfig
	Mongo MongoConfig
	SQL   SQLConfig
	Redis RedisConfig
	Audit AuditConfig
}

type AuthConfig struct {
	// TokenSecret signs and verifies access tokens. Startup fails without it.
	TokenSecret string `env:"ACCESS_TOKEN_SECRET, required"`
	// TokenTTL adds an exp claim when positive; zero issues non-expiring tokens.
	TokenTTL         time.Duration `env:"ACCESS_TOKEN_TTL,   default=0s"`
	BcryptCost       int           `env:"BCRYPT_COST,        default=10"`
	LoginMaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	LoginLockout     time.Duration `env:"LOGIN_LOCKOUT,      default=15m"`
}

type StoreConfig struct {
	Driver string `env:"STORE_DRIVER, default=mongo"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=finance"`
}

type SQLConfig struct {
	DSN         string `env:"SQL_DSN"`
	AutoMigrate bool   `env:"SQL_AUTO_MIGRATE, default=true"`
}

// RedisConfig is optional: an empty Addr disables login throttling.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// Load reads an optional .env file, then configuration from the process
// environment. Variables already set in the environment win over .env.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith resolves configuration through lookuper. Tests pass an
// envconfig.MapLookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Development reports whether ENV selects developer-friendly output.
func (c *Config) Development() bool {
	return strings.EqualFold(c.Env, "development")
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Auth.TokenSecret) == "" {
		return errors.New("ACCESS_TOKEN_SECRET must not be blank")
	}
	switch c.Store.Driver {
	case DriverMongo:
	case DriverMySQL, DriverPostgres, DriverSQLite:
		if c.SQL.DSN == "" {
			return fmt.Errorf("SQL_DSN is required for STORE_DRIVER=%s", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Auth.LoginMaxAttempts <= 0 {
		return errors.New("LOGIN_MAX_ATTEMPTS must be positive")
	}
	return nil
}
