package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no user config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-file", "", "")
	fs.String("log-level", "info", "")
	fs.String("bank", "", "")
	fs.Bool("strict", false, "")
	fs.String("start", "/", "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "", cfg.Bank.Path)
	assert.False(t, cfg.Flow.StrictOrder)
	assert.Equal(t, "/", cfg.Flow.Start)
	assert.Equal(t, 60*time.Second, cfg.Flow.DefaultTimeLimit)
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	doc := "log:\n  level: debug\n  format: json\nflow:\n  strict_order: true\n  default_time_limit: 45s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "navigator.yaml"), []byte(doc), 0o644))

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Flow.StrictOrder)
	assert.Equal(t, 45*time.Second, cfg.Flow.DefaultTimeLimit)
}

func TestLoadXDGConfigFile(t *testing.T) {
	dir := isolate(t)
	xdg := filepath.Join(dir, "xdg", "navigator")
	require.NoError(t, os.MkdirAll(xdg, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "navigator.yaml"), []byte("flow:\n  start: /assessment/technical\n"), 0o644))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "/assessment/technical", cfg.Flow.Start)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(Options{File: filepath.Join(dir, "nope.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "navigator.yaml"), []byte("log:\n  level: debug\n"), 0o644))
	t.Setenv("NAVIGATOR_LOG_LEVEL", "warn")
	t.Setenv("NAVIGATOR_FLOW_STRICT_ORDER", "true")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Flow.StrictOrder)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NAVIGATOR_BANK_PATH=/tmp/bank.yaml\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("NAVIGATOR_BANK_PATH") })

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bank.yaml", cfg.Bank.Path)
}

func TestLoadFlagsWinWhenSet(t *testing.T) {
	isolate(t)
	t.Setenv("NAVIGATOR_FLOW_START", "/assessment/wiscar")
	t.Setenv("NAVIGATOR_LOG_LEVEL", "warn")

	fs := flagSet()
	require.NoError(t, fs.Parse([]string{"--start", "/assessment/guidance", "--strict"}))

	cfg, err := Load(Options{Flags: fs})
	require.NoError(t, err)
	assert.Equal(t, "/assessment/guidance", cfg.Flow.Start)
	assert.True(t, cfg.Flow.StrictOrder)
	// Unset flags leave the environment in charge.
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
		want string
	}{
		{"level", "NAVIGATOR_LOG_LEVEL", "loud", "log.level"},
		{"format", "NAVIGATOR_LOG_FORMAT", "xml", "log.format"},
		{"start", "NAVIGATOR_FLOW_START", "assessment", "flow.start"},
		{"time limit", "NAVIGATOR_FLOW_DEFAULT_TIME_LIMIT", "-1s", "flow.default_time_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.env, tt.val)

			_, err := Load(Options{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "navigator"), dir)
}
