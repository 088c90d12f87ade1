package flagx

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverride(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	endpoint := fs.String("endpoint", "http://default", "")
	timeout := fs.Duration("timeout", time.Second, "")
	require.NoError(t, fs.Parse([]string{"--timeout=5s"}))

	gotEndpoint := "http://from-file"
	gotTimeout := 2 * time.Second

	Override(fs, "endpoint", &gotEndpoint, *endpoint)
	Override(fs, "timeout", &gotTimeout, *timeout)

	assert.Equal(t, "http://from-file", gotEndpoint)
	assert.Equal(t, 5*time.Second, gotTimeout)
}

func TestString(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "")
	fs.Int("n", 0, "")
	require.NoError(t, fs.Parse([]string{"-c", "conf.json"}))

	assert.Equal(t, "conf.json", String(fs, "config"))
	assert.Equal(t, "", String(fs, "missing"))
	assert.Equal(t, "", String(fs, "n"))
}
