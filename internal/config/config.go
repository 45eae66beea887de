package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Admin    AdminConfig
}

type AppConfig struct {
	AppName         string        `env:"APP_NAME" envDefault:"portfolio"`
	Environment     string        `env:"APP_ENV" envDefault:"development"`
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"5000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	Driver      string `env:"DB_DRIVER" envDefault:"postgres"`
	URL         string `env:"POSTGRES_URL"`
	DBHost      string `env:"DB_HOST"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBName      string `env:"DB_NAME"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBSSLMode   string `env:"DB_SSL_MODE" envDefault:"disable"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"portfolio.db"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	ConnectTimeout        time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	PoolMaxConns          int32         `env:"DB_POOL_MAX_CONNS"`
	PoolMinConns          int32         `env:"DB_POOL_MIN_CONNS"`
	PoolMaxConnLifetime   time.Duration `env:"DB_POOL_MAX_CONN_LIFETIME"`
	PoolMaxConnIdleTime   time.Duration `env:"DB_POOL_MAX_CONN_IDLE_TIME"`
	PoolHealthCheckPeriod time.Duration `env:"DB_POOL_HEALTH_CHECK_PERIOD"`
}

// RedisConfig configures the optional read cache. Host empty disables it.
type RedisConfig struct {
	Host     string        `env:"REDIS_HOST"`
	Port     string        `env:"REDIS_PORT" envDefault:"6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

type AuthConfig struct {
	Enabled          bool          `env:"ADMIN_AUTH_ENABLED" envDefault:"true"`
	AccessSecret     string        `env:"JWT_ACCESS_SECRET"`
	RefreshSecret    string        `env:"JWT_REFRESH_SECRET"`
	AccessExpiresIn  time.Duration `env:"JWT_ACCESS_EXPIRES_IN" envDefault:"15m"`
	RefreshExpiresIn time.Duration `env:"JWT_REFRESH_EXPIRES_IN" envDefault:"168h"`
}

// AdminConfig is read by the seed utility to bootstrap the admin account.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	return load(Config.Validate)
}

// LoadForSeed skips the auth settings, which the seed utility never reads.
func LoadForSeed() (Config, error) {
	return load(func(c Config) error { return c.validate(false) })
}

func load(validate func(Config) error) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements that struct tags cannot express.
func (c Config) Validate() error {
	return c.validate(true)
}

func (c Config) validate(withAuth bool) error {
	var missing, invalid []string

	req := func(key, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, key)
		}
	}

	req("APP_NAME", c.App.AppName)
	req("HTTP_PORT", c.App.HTTPPort)

	switch strings.TrimSpace(c.Database.Driver) {
	case "postgres":
		if strings.TrimSpace(c.Database.URL) == "" {
			req("DB_HOST", c.Database.DBHost)
			req("DB_NAME", c.Database.DBName)
			req("DB_USER", c.Database.DBUser)
		}
	case "sqlite":
		req("SQLITE_PATH", c.Database.SQLitePath)
	default:
		invalid = append(invalid, "DB_DRIVER")
	}

	if withAuth && c.Auth.Enabled {
		req("JWT_ACCESS_SECRET", c.Auth.AccessSecret)
		req("JWT_REFRESH_SECRET", c.Auth.RefreshSecret)
		if c.Auth.AccessExpiresIn <= 0 {
			invalid = append(invalid, "JWT_ACCESS_EXPIRES_IN")
		}
		if c.Auth.RefreshExpiresIn <= 0 {
			invalid = append(invalid, "JWT_REFRESH_EXPIRES_IN")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}
	return nil
}

// CacheEnabled reports whether a Redis host was configured.
func (c RedisConfig) CacheEnabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", strings.TrimSpace(c.Host), strings.TrimSpace(c.Port))
}
