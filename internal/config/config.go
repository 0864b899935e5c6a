package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DatabaseURLEnv names the environment variable holding the connection string.
const DatabaseURLEnv = "DB_URL"

type Config struct {
	Log LogConfig `toml:"log"`
	DB  DBConfig  `toml:"db"`
	Web WebConfig `toml:"web"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type DBConfig struct {
	URL          string   `toml:"url"`
	PoolSize     int      `toml:"pool_size"`
	MaxIdleConns int      `toml:"max_idle_conns"`
	MaxLifetime  int      `toml:"max_lifetime"`
	QueryTimeout Duration `toml:"query_timeout"`
}

type WebConfig struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	AllowOrigins    string   `toml:"allow_origins"`
	BodyLimit       int      `toml:"body_limit"`
	RateLimit       int      `toml:"rate_limit"`
	ProxyHeader     string   `toml:"proxy_header"`
	TrustedProxies  []string `toml:"trusted_proxies"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// Address returns the host:port the HTTP server listens on.
func (w WebConfig) Address() string {
	return fmt.Sprintf("%s:%d", w.Host, w.Port)
}

// Duration lets TOML files spell durations as "30s" or "5m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  slog.LevelInfo,
			Format: "pretty",
		},
		DB: DBConfig{
			PoolSize:     10,
			MaxIdleConns: 2,
			MaxLifetime:  300,
			QueryTimeout: Duration{30 * time.Second},
		},
		Web: WebConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			AllowOrigins:    "*",
			BodyLimit:       1 << 20,
			ShutdownTimeout: Duration{15 * time.Second},
		},
	}
}

// LoadConfig reads the TOML file at path on top of Default and then applies
// the DB_URL environment override. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// environment only
		case err != nil:
			return nil, fmt.Errorf("failed to open config: %w", err)
		default:
			defer file.Close()
			if err = toml.NewDecoder(file).Decode(cfg); err != nil {
				return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
			}
		}
	}

	if url := strings.TrimSpace(os.Getenv(DatabaseURLEnv)); url != "" {
		cfg.DB.URL = url
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("database url is required (set %s or db.url)", DatabaseURLEnv)
	}
	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		return fmt.Errorf("web.port %d is out of range", c.Web.Port)
	}
	if c.Web.RateLimit < 0 {
		return fmt.Errorf("web.rate_limit %d must not be negative", c.Web.RateLimit)
	}
	if c.Web.ProxyHeader != "" && len(c.Web.TrustedProxies) == 0 {
		return fmt.Errorf("web.proxy_header %q requires web.trusted_proxies", c.Web.ProxyHeader)
	}
	switch c.Log.Format {
	case "pretty", "text", "json":
	default:
		return fmt.Errorf("log.format %q must be one of pretty, text, json", c.Log.Format)
	}
	return nil
}
