// Package config loads runtime configuration for the hradmin CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by -c/--config.
//  3. Environment variables prefixed HRADMIN_, e.g. HRADMIN_CIPHER_KEY.
//  4. Command-line flags that were explicitly set.
//
// JSON durations accept strings like "60s" or integer nanoseconds:
//
//	{
//	  "api_endpoint": "http://3.39.247.194",
//	  "cipher_key": "…32 bytes…",
//	  "refresh_buffer": "60s",
//	  "request_timeout": "15s",
//	  "retry_attempts": 3,
//	  "session_check_interval": "30s",
//	  "data_dir": ".hradmin",
//	  "database_name": "hradmin.db",
//	  "ephemeral": false,
//	  "log_level": "warn"
//	}
//
// The cipher key has no default. It must be 16, 24 or 32 bytes and is the
// same key the backend uses for the field cipher.
package config
