package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, rates, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Payment   PaymentConfig
	Pricing   PricingConfig
	AMQP      AMQPConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Sweep     SweepConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// StoreConfig selects the inventory/ledger backing store. The memory driver
// exists for local runs and tests; postgres is the production driver.
type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

// DBConfig is only consulted by the postgres driver; Validate enforces the
// connection settings per driver so a memory-store run needs no DB env.
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type PaymentConfig struct {
	BaseURL string        `envconfig:"PAYMENT_BASE_URL"`
	APIKey  string        `envconfig:"PAYMENT_API_KEY"`
	Timeout time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"15s"`
}

type PricingConfig struct {
	NightlyRateCents int64 `envconfig:"PRICING_NIGHTLY_RATE_CENTS" default:"2500"`
}

type AMQPConfig struct {
	URL   string `envconfig:"AMQP_URL" default:""`
	Queue string `envconfig:"AMQP_QUEUE" default:"reservation.events"`
}

type CacheConfig struct {
	VacancyTTL time.Duration `envconfig:"CACHE_VACANCY_TTL" default:"15s"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

type SweepConfig struct {
	Interval   time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`
	PendingTTL time.Duration `envconfig:"SWEEP_PENDING_TTL" default:"30m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate enforces the settings the selected store driver actually needs.
// The memory driver is for local runs and tests and must boot without DB or
// payment gateway env; postgres is the production driver and requires both.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case "memory":
		return nil
	case "postgres":
		missing := []string{}
		if c.DB.User == "" {
			missing = append(missing, "DB_USER")
		}
		if c.DB.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
		if c.Payment.BaseURL == "" {
			missing = append(missing, "PAYMENT_BASE_URL")
		}
		if c.Payment.APIKey == "" {
			missing = append(missing, "PAYMENT_API_KEY")
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
		}
		return nil
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Payment: PaymentConfig{
			BaseURL: "http://localhost:9999",
			APIKey:  "test-key",
			Timeout: time.Second,
		},
		Pricing: PricingConfig{
			NightlyRateCents: 2500,
		},
		Sweep: SweepConfig{
			Interval:   time.Minute,
			PendingTTL: 30 * time.Minute,
		},
	}
}
