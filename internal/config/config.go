package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "GATEWAY_"

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Gateway  GatewayConfig  `koanf:"gateway"`
	Client   ClientConfig   `koanf:"client"`
	Database DatabaseConfig `koanf:"database" validate:"-"`
	Redis    RedisConfig    `koanf:"redis" validate:"-"`
	Logger   LoggerConfig   `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

// GatewayConfig selects the brand and carries the merchant credentials.
// Partner, login and password are checked when the gateway is built so a
// missing credential surfaces as a configuration fault from the gateway itself.
type GatewayConfig struct {
	Brand      string `koanf:"brand" validate:"required"`
	Partner    string `koanf:"partner"`
	Login      string `koanf:"login"`
	Password   string `koanf:"password"`
	Integrator string `koanf:"integrator"`
	Test       bool   `koanf:"test"`
}

type ClientConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"required"`
	Retry   RetryConfig   `koanf:"retry"`
	Breaker BreakerConfig `koanf:"breaker"`
}

// RetryBudget is the longest one platform call can take: every attempt runs
// to the timeout and every backoff draws its maximum jitter.
func (c ClientConfig) RetryBudget() time.Duration {
	attempts := max(c.Retry.MaxRetries, 1)

	budget := time.Duration(attempts) * c.Timeout
	for attempt := 0; attempt < attempts-1; attempt++ {
		delay := c.Retry.BaseDelay * time.Duration(1<<attempt)
		budget += delay + delay/2
	}
	return budget
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries int           `koanf:"max_retries" validate:"min=1"`
}

type BreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold" validate:"min=1"`
}

type DatabaseConfig struct {
	Enabled         bool          `koanf:"enabled"`
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

type RedisConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Addr     string        `koanf:"addr" validate:"required"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	TTL      time.Duration `koanf:"ttl" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

var defaults = map[string]interface{}{
	"primary.env":                      "development",
	"server.port":                      "8080",
	"server.read_timeout":              "15s",
	"server.write_timeout":             "30s",
	"server.idle_timeout":              "60s",
	"gateway.brand":                    "onlinepayments",
	"client.timeout":                   "20s",
	"client.retry.base_delay":          "200ms",
	"client.retry.max_retries":         3,
	"client.breaker.max_requests":      1,
	"client.breaker.interval":          "60s",
	"client.breaker.timeout":           "30s",
	"client.breaker.failure_threshold": 5,
	"database.ssl_mode":                "disable",
	"database.max_open_conns":          10,
	"database.max_idle_conns":          2,
	"database.conn_max_lifetime":       "1h",
	"database.conn_max_idle_time":      "30m",
	"redis.ttl":                        "24h",
	"logger.level":                     "info",
	"logger.format":                    "json",
}

// LoadConfig reads defaults, then GATEWAY_* environment variables. A double
// underscore nests keys: GATEWAY_GATEWAY__PARTNER sets gateway.partner.
func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if err := mainConfig.Validate(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// RequestTimeout bounds one API request. Verify makes two platform calls, so
// it is never shorter than two retry budgets.
func (c *Config) RequestTimeout() time.Duration {
	return max(c.Server.ReadTimeout, 2*c.Client.RetryBudget())
}

// Validate checks required fields. Optional backends are only checked when enabled.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Database.Enabled {
		if err := validate.Struct(&c.Database); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	if c.Redis.Enabled {
		if err := validate.Struct(&c.Redis); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}
