package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/hradmin/internal/common"
	"github.com/dmitrijs2005/hradmin/internal/cryptox"
)

const DefaultAPIEndpoint = "http://3.39.247.194"

// Config holds runtime settings. Env tags are relative to the HRADMIN_ prefix.
type Config struct {
	APIEndpoint          string        `env:"API_ENDPOINT"`
	CipherKey            string        `env:"CIPHER_KEY"`
	RefreshBuffer        time.Duration `env:"REFRESH_BUFFER"`
	RequestTimeout       time.Duration `env:"REQUEST_TIMEOUT"`
	RetryAttempts        int           `env:"RETRY_ATTEMPTS"`
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
	DataDir              string        `env:"DATA_DIR"`
	DatabaseName         string        `env:"DATABASE_NAME"`
	// Ephemeral keeps the session in memory only.
	Ephemeral bool   `env:"EPHEMERAL"`
	LogLevel  string `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with defaults. CipherKey is left empty.
func (c *Config) LoadDefaults() {
	c.APIEndpoint = DefaultAPIEndpoint
	c.RefreshBuffer = common.RefreshBuffer
	c.RequestTimeout = 15 * time.Second
	c.RetryAttempts = 3
	c.SessionCheckInterval = 30 * time.Second
	c.DataDir = ".hradmin"
	c.DatabaseName = "hradmin.db"
	c.LogLevel = "warn"
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.APIEndpoint == "" {
		errs = append(errs, errors.New("api endpoint is empty"))
	} else if u, err := url.Parse(c.APIEndpoint); err != nil || u.Host == "" {
		errs = append(errs, fmt.Errorf("api endpoint %q is not an absolute URL", c.APIEndpoint))
	}
	if _, err := cryptox.NewCipher(c.CipherKey); err != nil {
		errs = append(errs, fmt.Errorf("cipher key: %w", err))
	}
	if c.RefreshBuffer < 0 {
		errs = append(errs, errors.New("refresh buffer must not be negative"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}
	if c.RetryAttempts < 1 {
		errs = append(errs, errors.New("retry attempts must be at least 1"))
	}
	if c.SessionCheckInterval <= 0 {
		errs = append(errs, errors.New("session check interval must be positive"))
	}
	if !c.Ephemeral && c.DatabaseName == "" {
		errs = append(errs, errors.New("database name is empty"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// DatabasePath joins DataDir and DatabaseName.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseName)
}
