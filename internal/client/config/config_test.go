package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const key32 = "hrhrhr!!@00000000000000000000000"

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func newFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := pflag.NewFlagSet("hradmin", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hradmin.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()
	want := Config{
		APIEndpoint:          "http://3.39.247.194",
		RefreshBuffer:        60 * time.Second,
		RequestTimeout:       15 * time.Second,
		RetryAttempts:        3,
		SessionCheckInterval: 30 * time.Second,
		DataDir:              ".hradmin",
		DatabaseName:         "hradmin.db",
		LogLevel:             "warn",
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, filepath.Join(".hradmin", "hradmin.db"), c.DatabasePath())
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `{
		"api_endpoint": "http://file.example",
		"cipher_key": "0123456789abcdef",
		"refresh_buffer": "90s",
		"request_timeout": 5000000000,
		"data_dir": "/var/lib/hradmin",
		"log_level": "info"
	}`)
	environ := map[string]string{
		"HRADMIN_API_ENDPOINT":   "http://env.example",
		"HRADMIN_CIPHER_KEY":     key32,
		"HRADMIN_RETRY_ATTEMPTS": "5",
	}
	f := newFlags(t, "-c", path, "--api-endpoint", "http://flag.example", "--log-level", "debug")

	cfg, err := f.load(environ)
	require.NoError(t, err)

	want := defaults()
	want.APIEndpoint = "http://flag.example"
	want.CipherKey = key32
	want.RefreshBuffer = 90 * time.Second
	want.RequestTimeout = 5 * time.Second
	want.RetryAttempts = 5
	want.DataDir = "/var/lib/hradmin"
	want.LogLevel = "debug"

	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_UnchangedFlagsKeepLowerSources(t *testing.T) {
	f := newFlags(t)
	cfg, err := f.load(map[string]string{
		"HRADMIN_CIPHER_KEY":             key32,
		"HRADMIN_SESSION_CHECK_INTERVAL": "10s",
		"HRADMIN_EPHEMERAL":              "true",
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIEndpoint, cfg.APIEndpoint)
	assert.Equal(t, 10*time.Second, cfg.SessionCheckInterval)
	assert.True(t, cfg.Ephemeral)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := newFlags(t, "-c", filepath.Join(t.TempDir(), "nope.json")).load(map[string]string{})
		assert.ErrorContains(t, err, "read config")
	})
	t.Run("bad json", func(t *testing.T) {
		_, err := newFlags(t, "-c", writeConfig(t, `{"refresh_buffer": true}`)).load(map[string]string{})
		assert.ErrorContains(t, err, "parse config")
	})
	t.Run("bad env", func(t *testing.T) {
		_, err := newFlags(t).load(map[string]string{"HRADMIN_RETRY_ATTEMPTS": "many"})
		assert.ErrorContains(t, err, "parse environment")
	})
	t.Run("missing key", func(t *testing.T) {
		_, err := newFlags(t).load(map[string]string{})
		assert.ErrorContains(t, err, "cipher key")
	})
}

func TestValidate(t *testing.T) {
	c := defaults()
	c.CipherKey = key32
	require.NoError(t, c.Validate())

	bad := c
	bad.APIEndpoint = "3.39.247.194"
	bad.CipherKey = "short"
	bad.RetryAttempts = 0
	bad.LogLevel = "loud"

	err := bad.Validate()
	require.Error(t, err)
	for _, part := range []string{"api endpoint", "cipher key", "retry attempts", "log level"} {
		assert.ErrorContains(t, err, part)
	}
}

func TestLevel(t *testing.T) {
	c := defaults()
	c.LogLevel = "debug"
	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, -4, int(l))
}
