package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the user's real config directory out of the search path.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "console", c.Log.Format)
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, 20.0, c.Server.RateLimit)
	assert.Equal(t, 40, c.Server.Burst)
	assert.Equal(t, 5*time.Second, c.Server.ReadTimeout)
	assert.Equal(t, int64(4096), c.Server.MaxBodyBytes)
	assert.Equal(t, "human", c.Output.Format)
	assert.True(t, c.Output.Color)
	assert.Empty(t, c.Dictionary.Path)
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
server:
  addr: 127.0.0.1:9000
  read_timeout: 2s
output:
  format: json
`), 0o600))

	t.Setenv("PASSCHECK_SERVER_BURST", "7")
	t.Setenv("PASSCHECK_LOG_FORMAT", "json")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("output", "human", "")
	require.NoError(t, cmd.Flags().Set("output", "yaml"))

	c, err := Load(cmd, path)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "127.0.0.1:9000", c.Server.Addr)
	assert.Equal(t, 2*time.Second, c.Server.ReadTimeout)
	assert.Equal(t, 7, c.Server.Burst)
	assert.Equal(t, "yaml", c.Output.Format, "flag beats file")
}

func TestLoad_UnchangedFlagKeepsDefault(t *testing.T) {
	isolate(t)

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("log-level", "", "")

	c, err := Load(cmd, "")
	require.NoError(t, err)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(nil, filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)
	t.Setenv("PASSCHECK_OUTPUT_FORMAT", "xml")
	t.Setenv("PASSCHECK_SERVER_ADDR", "not an address")

	_, err := Load(nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Output.Format")
	assert.Contains(t, err.Error(), "Config.Server.Addr")
}

func TestValidate_DictionaryPath(t *testing.T) {
	dir := isolate(t)

	c, err := Load(nil, "")
	require.NoError(t, err)

	c.Dictionary.Path = filepath.Join(dir, "missing.txt")
	assert.Error(t, c.Validate())

	existing := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(existing, []byte("hunter2\n"), 0o600))
	c.Dictionary.Path = existing
	assert.NoError(t, c.Validate())
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "absent.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PASSCHECK_LOG_LEVEL=warn\n"), 0o600))
	t.Setenv("PASSCHECK_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("PASSCHECK_LOG_LEVEL"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "warn", os.Getenv("PASSCHECK_LOG_LEVEL"))

	c, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "warn", c.Log.Level)
}
