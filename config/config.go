package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Environment string

const (
	Local      Environment = "local"
	Production Environment = "production"
)

type Config struct {
	App       App
	Portfolio Portfolio
	Database  Database
	Slack     Slack
	Otel      Otel
}

type App struct {
	Env         Environment `env:"APP_ENV" envDefault:"local"`
	Port        string      `env:"APP_PORT" envDefault:"8080"`
	MetricsPort string      `env:"APP_METRICS_PORT" envDefault:"9090"`
	LogLevel    string      `env:"APP_LOG_LEVEL" envDefault:"info"`
	// ContentDir, when set in the local environment, replaces the embedded
	// content and is watched for changes.
	ContentDir string `env:"APP_CONTENT_DIR"`
}

type Portfolio struct {
	ResetFiltersOnTabSwitch bool `env:"PORTFOLIO_RESET_FILTERS_ON_TAB_SWITCH" envDefault:"false"`
}

type Database struct {
	Username string `env:"DB_USERNAME"`
	Password string `env:"DB_PASSWORD"`
	Endpoint string `env:"DB_ENDPOINT"`
	Name     string `env:"DB_NAME" envDefault:"portfolio"`
	SSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`
}

func (d Database) Enabled() bool {
	return d.Endpoint != ""
}

func (d Database) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		d.Username,
		d.Password,
		d.Endpoint,
		d.Name,
		d.SSLMode,
	)
}

type Slack struct {
	BotToken         string `env:"SLACK_PORTFOLIO_BOT_TOKEN"`
	ContactChannelID string `env:"SLACK_CONTACT_CHANNEL_ID"`
}

type Otel struct {
	Enabled bool `env:"OTEL_ENABLED" envDefault:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.App.Env != Local && cfg.App.Env != Production {
		return nil, fmt.Errorf("unknown APP_ENV %q", cfg.App.Env)
	}

	return &cfg, nil
}

func New() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
