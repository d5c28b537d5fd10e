package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		EnvAddr:          "127.0.0.1:9000",
		EnvLogLevel:      "debug",
		EnvLogPretty:     "true",
		EnvMatchInterval: "500ms",
	}))
	require.NoError(t, err)
	require.Equal(t, Config{
		Addr:          "127.0.0.1:9000",
		LogLevel:      "debug",
		LogPretty:     true,
		MatchInterval: 500 * time.Millisecond,
	}, cfg)
}

func TestFromEnvInvalid(t *testing.T) {
	for name, m := range map[string]map[string]string{
		"pretty":            {EnvLogPretty: "sometimes"},
		"interval":          {EnvMatchInterval: "soon"},
		"negative interval": {EnvMatchInterval: "-1s"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(env(m))
			require.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CHECKERS_ADDR=:7777\nCHECKERS_MATCH_INTERVAL=3s\n"), 0o600))

	t.Setenv(EnvAddr, "")
	require.NoError(t, os.Unsetenv(EnvAddr))
	t.Setenv(EnvMatchInterval, "")
	require.NoError(t, os.Unsetenv(EnvMatchInterval))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7777", cfg.Addr)
	require.Equal(t, 3*time.Second, cfg.MatchInterval)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
}
