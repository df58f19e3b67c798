package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := map[string]logger.Level{
		"debug": logger.DebugLevel,
		"warn":  logger.WarnLevel,
		"error": logger.ErrorLevel,
		"info":  logger.InfoLevel,
		"":      logger.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, LoggerConfig{Level: in}.LogLevel(), in)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "motbooker", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=motbooker sslmode=disable", p.DSN())
}

func TestBackendConfig_RetryStrategy(t *testing.T) {
	b := BackendConfig{RetryAttempts: 4, RetryDelay: 250 * time.Millisecond, RetryBackoff: 1.5}

	s := b.RetryStrategy()

	assert.Equal(t, 4, s.Attempts)
	assert.Equal(t, 250*time.Millisecond, s.Delay)
	assert.InDelta(t, 1.5, s.Backoff, 1e-9)
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MOTBOOKER_TEST_A=from_file\nMOTBOOKER_TEST_B=from_file\n"), 0o600))

	t.Setenv("MOTBOOKER_TEST_A", "from_env")
	t.Cleanup(func() { _ = os.Unsetenv("MOTBOOKER_TEST_B") })

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "from_env", os.Getenv("MOTBOOKER_TEST_A"))
	assert.Equal(t, "from_file", os.Getenv("MOTBOOKER_TEST_B"))
}

func TestLoad_ShippedConfig(t *testing.T) {
	cfg, err := Load("../../config/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 120*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Postgres.ConnMaxLifetime)
	assert.Equal(t, "mot_form_session", cfg.Form.SessionCookie)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://backend.internal:5000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("../../config/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "http://backend.internal:5000", cfg.Backend.BaseURL)
	assert.Equal(t, logger.DebugLevel, cfg.Logger.LogLevel())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorIs(t, err, cleanenvport.ErrConfigFileNotFound)
}

func TestLoad_InvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gin:\n  mode: verbose\n"), 0o600))

	_, err := Load(path)

	assert.ErrorIs(t, err, cleanenvport.ErrConfigValidation)
}
