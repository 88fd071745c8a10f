package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{FileEnv, BackendURLEnv, DriverEnv, LogFileEnv, OTLPEndpointEnv, ServiceNameEnv} {
		t.Setenv(k, "")
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv(BackendURLEnv, "https://backend.example.com/")
	t.Setenv(DriverEnv, " Sam ")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://backend.example.com", cfg.BackendURL, "trailing slash is trimmed")
	assert.Equal(t, "Sam", cfg.DriverName)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Equal(t, DefaultServiceName, cfg.ServiceName)
}

func TestLoad_MissingBackendURL(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	assert.ErrorIs(t, err, ErrNoBackendURL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "pickupdeck.yaml")
	t.Setenv("TEST_DRIVER", "Alex")
	body := "backend_url: http://file.local\ndriver_name: ${TEST_DRIVER}\nlog_file: /tmp/x.log\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://file.local", cfg.BackendURL)
	assert.Equal(t, "Alex", cfg.DriverName, "env references are expanded")
	assert.Equal(t, "/tmp/x.log", cfg.LogFile)

	// Env wins over file.
	t.Setenv(BackendURLEnv, "http://env.local")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.local", cfg.BackendURL)
}

func TestLoad_FileFromEnvVar(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend_url: http://viaenv.local\n"), 0o644))
	t.Setenv(FileEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://viaenv.local", cfg.BackendURL)
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend_url: [unterminated\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadWithOverrides_FlagsWin(t *testing.T) {
	clearEnv(t)
	t.Setenv(BackendURLEnv, "http://env.local")
	t.Setenv(DriverEnv, "Sam")

	cfg, err := LoadWithOverrides("", Config{BackendURL: "http://flag.local/"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag.local", cfg.BackendURL)
	assert.Equal(t, "Sam", cfg.DriverName, "empty override fields keep lower layers")
}

func TestLoadWithOverrides_SuppliesMissingBackend(t *testing.T) {
	clearEnv(t)

	_, err := LoadWithOverrides("", Config{})
	assert.ErrorIs(t, err, ErrNoBackendURL)

	cfg, err := LoadWithOverrides("", Config{BackendURL: "http://flag.local"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag.local", cfg.BackendURL)
}
