package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/hradmin/internal/timex"
)

// jsonConfig mirrors Config for file decoding. Pointer fields distinguish
// "absent" from zero values so a file only overrides what it names.
type jsonConfig struct {
	APIEndpoint          *string         `json:"api_endpoint"`
	CipherKey            *string         `json:"cipher_key"`
	RefreshBuffer        *timex.Duration `json:"refresh_buffer"`
	RequestTimeout       *timex.Duration `json:"request_timeout"`
	RetryAttempts        *int            `json:"retry_attempts"`
	SessionCheckInterval *timex.Duration `json:"session_check_interval"`
	DataDir              *string         `json:"data_dir"`
	DatabaseName         *string         `json:"database_name"`
	Ephemeral            *bool           `json:"ephemeral"`
	LogLevel             *string         `json:"log_level"`
}

func loadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	set(&cfg.APIEndpoint, jc.APIEndpoint)
	set(&cfg.CipherKey, jc.CipherKey)
	set(&cfg.RetryAttempts, jc.RetryAttempts)
	set(&cfg.DataDir, jc.DataDir)
	set(&cfg.DatabaseName, jc.DatabaseName)
	set(&cfg.Ephemeral, jc.Ephemeral)
	set(&cfg.LogLevel, jc.LogLevel)
	if jc.RefreshBuffer != nil {
		cfg.RefreshBuffer = jc.RefreshBuffer.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionCheckInterval != nil {
		cfg.SessionCheckInterval = jc.SessionCheckInterval.Duration
	}
	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
