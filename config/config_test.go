package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CI", "ENV", "STORAGE_DRIVER", "DB_PASSWORD", "LLM_PROVIDER", "LLM_REQUIRED", "GEMINI_API_KEY", "DEEPSEEK_API_KEY", "SERVER_PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("SECRETS_DIR", t.TempDir())
}

func TestLoadConfigWithDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 10, cfg.GenerateRateLimit)
	assert.Equal(t, time.Hour, cfg.GenerateRateWindow)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("LLM_PROVIDER", "deepseek")
	t.Setenv("GENERATE_RATE_LIMIT", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, ProviderDeepSeek, cfg.LLMProvider)
	assert.Equal(t, 3, cfg.GenerateRateLimit)
	assert.Contains(t, cfg.PostgresDSN(), "host=db")
	assert.Contains(t, cfg.PostgresDSN(), "password=postgres")
}

func TestSecretsOverrideEnvironment(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("GEMINI_API_KEY", "from-env")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gemini_api_key"), []byte("from-secret\n"), 0o600))

	keyFile := filepath.Join(t.TempDir(), "deepseek")
	require.NoError(t, os.WriteFile(keyFile, []byte(" ds-key "), 0o600))
	t.Setenv("DEEPSEEK_API_KEY_FILE", keyFile)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-secret", cfg.GeminiAPIKey)
	assert.Equal(t, "ds-key", cfg.DeepSeekAPIKey)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		return &Config{
			ServerPort:    "8080",
			StorageDriver: StorageMemory,
			LLMProvider:   ProviderGemini,
		}
	}

	t.Run("development defaults are valid", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(Development, base()))
	})

	t.Run("unknown storage driver", func(t *testing.T) {
		cfg := base()
		cfg.StorageDriver = "mongo"
		err := ValidateConfig(Development, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "STORAGE_DRIVER")
	})

	t.Run("production requires postgres", func(t *testing.T) {
		err := ValidateConfig(Production, base())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "production requires postgres storage")
	})

	t.Run("postgres requires password", func(t *testing.T) {
		cfg := base()
		cfg.StorageDriver = StoragePostgres
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBName = "localhost", "5432", "postgres", "pantrychef"
		err := ValidateConfig(Development, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PASSWORD")
	})

	t.Run("required provider needs key", func(t *testing.T) {
		cfg := base()
		cfg.LLMRequired = true
		err := ValidateConfig(Development, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")

		cfg.GeminiAPIKey = "key"
		assert.NoError(t, ValidateConfig(Development, cfg))
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := base()
		cfg.LLMProvider = "claude"
		assert.Error(t, ValidateConfig(Development, cfg))
	})
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
