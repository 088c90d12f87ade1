package config

import (
	"github.com/spf13/pflag"

	"github.com/dmitrijs2005/hradmin/internal/flagx"
)

// Flag names.
const (
	FlagConfig               = "config"
	FlagAPIEndpoint          = "api-endpoint"
	FlagCipherKey            = "cipher-key"
	FlagRefreshBuffer        = "refresh-buffer"
	FlagRequestTimeout       = "request-timeout"
	FlagRetryAttempts        = "retry-attempts"
	FlagSessionCheckInterval = "session-check-interval"
	FlagDataDir              = "data-dir"
	FlagEphemeral            = "ephemeral"
	FlagLogLevel             = "log-level"
)

// Flags binds configuration flags to a flag set.
type Flags struct {
	fs   *pflag.FlagSet
	vals Config
}

// RegisterFlags defines the configuration flags on fs. Defaults shown in
// help come from LoadDefaults.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to a JSON config file")
	fs.StringVarP(&f.vals.APIEndpoint, FlagAPIEndpoint, "a", d.APIEndpoint, "admin API base URL")
	fs.StringVar(&f.vals.CipherKey, FlagCipherKey, "", "field cipher key (16, 24 or 32 bytes)")
	fs.DurationVar(&f.vals.RefreshBuffer, FlagRefreshBuffer, d.RefreshBuffer, "refresh the access token this long before it expires")
	fs.DurationVar(&f.vals.RequestTimeout, FlagRequestTimeout, d.RequestTimeout, "HTTP request timeout")
	fs.IntVar(&f.vals.RetryAttempts, FlagRetryAttempts, d.RetryAttempts, "attempts for idempotent requests")
	fs.DurationVarP(&f.vals.SessionCheckInterval, FlagSessionCheckInterval, "i", d.SessionCheckInterval, "session check interval of the shell")
	fs.StringVar(&f.vals.DataDir, FlagDataDir, d.DataDir, "directory of the local database")
	fs.BoolVar(&f.vals.Ephemeral, FlagEphemeral, false, "keep the session in memory only")
	fs.StringVar(&f.vals.LogLevel, FlagLogLevel, d.LogLevel, "log level: debug, info, warn or error")
	return f
}

func (f *Flags) apply(cfg *Config) {
	flagx.Override(f.fs, FlagAPIEndpoint, &cfg.APIEndpoint, f.vals.APIEndpoint)
	flagx.Override(f.fs, FlagCipherKey, &cfg.CipherKey, f.vals.CipherKey)
	flagx.Override(f.fs, FlagRefreshBuffer, &cfg.RefreshBuffer, f.vals.RefreshBuffer)
	flagx.Override(f.fs, FlagRequestTimeout, &cfg.RequestTimeout, f.vals.RequestTimeout)
	flagx.Override(f.fs, FlagRetryAttempts, &cfg.RetryAttempts, f.vals.RetryAttempts)
	flagx.Override(f.fs, FlagSessionCheckInterval, &cfg.SessionCheckInterval, f.vals.SessionCheckInterval)
	flagx.Override(f.fs, FlagDataDir, &cfg.DataDir, f.vals.DataDir)
	flagx.Override(f.fs, FlagEphemeral, &cfg.Ephemeral, f.vals.Ephemeral)
	flagx.Override(f.fs, FlagLogLevel, &cfg.LogLevel, f.vals.LogLevel)
}

// Load builds the configuration from defaults, the JSON file, the process
// environment and the parsed flags, then validates it.
func (f *Flags) Load() (*Config, error) {
	return f.load(nil)
}

func (f *Flags) load(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.String(f.fs, FlagConfig); path != "" {
		if err := loadJSON(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := loadEnv(cfg, environ); err != nil {
		return nil, err
	}
	f.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
