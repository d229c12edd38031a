package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the merged view of configs/config.yml, defaults and
// STATUS_MONITOR_* environment variables.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Feed       FeedConfig       `mapstructure:"feed"`
	Store      StoreConfig      `mapstructure:"store"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port        string `mapstructure:"port"`
	WebhookPath string `mapstructure:"webhook_path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type FeedConfig struct {
	URL       string        `mapstructure:"url"`
	Interval  time.Duration `mapstructure:"interval"`
	Timeout   time.Duration `mapstructure:"timeout"` // 0 disables the client timeout
	UserAgent string        `mapstructure:"user_agent"`
}

type StoreConfig struct {
	Driver     string `mapstructure:"driver"` // json | sqlite
	Path       string `mapstructure:"path"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type ClassifierConfig struct {
	Preset       string `mapstructure:"preset"`
	KeywordsFile string `mapstructure:"keywords_file"`
}

type AuthConfig struct {
	Username     string        `mapstructure:"username"`
	PasswordHash string        `mapstructure:"password_hash"`
	SigningKey   string        `mapstructure:"signing_key"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Store drivers.
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

const envPrefix = "STATUS_MONITOR"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.webhook_path", "/webhooks/openai-status")
	v.SetDefault("log.level", "info")
	v.SetDefault("feed.url", "https://status.openai.com/history.rss")
	v.SetDefault("feed.interval", 30*time.Second)
	v.SetDefault("feed.timeout", time.Duration(0))
	v.SetDefault("feed.user_agent", "status-monitor/1.0")
	v.SetDefault("store.driver", DriverJSON)
	v.SetDefault("store.path", "logs/openai_status_log.json")
	v.SetDefault("store.sqlite_path", "logs/openai_status_log.db")
	v.SetDefault("classifier.preset", "")
	v.SetDefault("classifier.keywords_file", "")
	v.SetDefault("auth.username", "")
	v.SetDefault("auth.password_hash", "")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("metrics.addr", "")
}

// Load reads config.yml from the given search paths (configs/ when none).
// A missing file is not an error; defaults and environment still apply.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the binaries cannot run with.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverJSON, DriverSQLite:
	default:
		return fmt.Errorf("store.driver must be %q or %q, got %q", DriverJSON, DriverSQLite, c.Store.Driver)
	}
	if c.Feed.Interval <= 0 {
		return fmt.Errorf("feed.interval must be positive, got %s", c.Feed.Interval)
	}
	if !strings.HasPrefix(c.Server.WebhookPath, "/") {
		return fmt.Errorf("server.webhook_path must start with '/', got %q", c.Server.WebhookPath)
	}
	return nil
}
