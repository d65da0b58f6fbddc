package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (windows, intervals, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	Sweep  SweepConfig
	Notify NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
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

// SweepConfig drives the two background checks. The completion sweep runs on a
// short period, the invoice-reminder sweep on a long one.
type SweepConfig struct {
	CompletionInterval time.Duration `envconfig:"SWEEP_COMPLETION_INTERVAL" default:"1m"`
	ReminderInterval   time.Duration `envconfig:"SWEEP_REMINDER_INTERVAL" default:"1h"`
	ReminderAfter      time.Duration `envconfig:"SWEEP_REMINDER_AFTER" default:"168h"`
}

type NotifyConfig struct {
	WebhookURL     string        `envconfig:"NOTIFY_WEBHOOK_URL" required:"true"`
	FinanceEmail   string        `envconfig:"NOTIFY_FINANCE_EMAIL" required:"true"`
	DebounceWindow time.Duration `envconfig:"NOTIFY_DEBOUNCE_WINDOW" default:"300ms"`
	SendTimeout    time.Duration `envconfig:"NOTIFY_SEND_TIMEOUT" default:"10s"`
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
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Sweep: SweepConfig{
			CompletionInterval: 50 * time.Millisecond,
			ReminderInterval:   50 * time.Millisecond,
			ReminderAfter:      7 * 24 * time.Hour,
		},
		Notify: NotifyConfig{
			WebhookURL:     "http://localhost:9999/notify",
			FinanceEmail:   "finance@example.com",
			DebounceWindow: 20 * time.Millisecond,
			SendTimeout:    time.Second,
		},
	}
}
