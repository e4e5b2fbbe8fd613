package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Storage drivers selectable at process start.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// LLM providers for recipe generation.
const (
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"
	ProviderNone     = "none"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`
	ServerHost string `envconfig:"SERVER_HOST" default:"0.0.0.0"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// Storage selection and database configuration
	StorageDriver   string        `envconfig:"STORAGE_DRIVER" default:"memory"`
	SQLitePath      string        `envconfig:"SQLITE_PATH" default:"pantrychef.db"`
	DBHost          string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort          string        `envconfig:"DB_PORT" default:"5432"`
	DBUser          string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword      string        `envconfig:"DB_PASSWORD"`
	DBName          string        `envconfig:"DB_NAME" default:"pantrychef"`
	DBSSLMode       string        `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxOpenConns  int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns  int           `envconfig:"DB_MAX_IDLE_CONNS" default:"25"`
	DBConnLifetime  time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	SeedSampleData  bool          `envconfig:"SEED_SAMPLE_DATA" default:"true"`
	RunMigrations   bool          `envconfig:"RUN_MIGRATIONS" default:"true"`

	// Redis configuration
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	RedisURL      string `envconfig:"REDIS_URL"`

	// Rate limiting of AI generation, per client IP
	GenerateRateLimit  int           `envconfig:"GENERATE_RATE_LIMIT" default:"10"`
	GenerateRateWindow time.Duration `envconfig:"GENERATE_RATE_WINDOW" default:"1h"`

	// Recipe generation
	LLMProvider    string `envconfig:"LLM_PROVIDER" default:"gemini"`
	LLMRequired    bool   `envconfig:"LLM_REQUIRED" default:"false"`
	GeminiAPIKey   string `envconfig:"GEMINI_API_KEY"`
	GeminiModel    string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	DeepSeekAPIKey string `envconfig:"DEEPSEEK_API_KEY"`
	DeepSeekAPIURL string `envconfig:"DEEPSEEK_API_URL" default:"https://api.deepseek.com/v1"`
	DeepSeekModel  string `envconfig:"DEEPSEEK_MODEL" default:"deepseek-chat"`

	// Generated image mirroring
	S3BucketName string `envconfig:"S3_BUCKET_NAME"`
	AWSRegion    string `envconfig:"AWS_REGION" default:"us-east-1"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

// LoadConfig creates a new Config from .env, environment variables and secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	if env != Production {
		// A missing .env file is normal outside local development.
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := loadSecrets(cfg); err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	cfg.LLMProvider = strings.ToLower(strings.TrimSpace(cfg.LLMProvider))

	// Validate the configuration
	if err := ValidateConfig(env, cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadSecrets overlays sensitive values from Docker secrets and *_FILE
// variables. Secrets win over plain environment variables.
func loadSecrets(cfg *Config) error {
	overlays := []struct {
		secret  string
		fileEnv string
		target  *string
	}{
		{"db_password", "DB_PASSWORD_FILE", &cfg.DBPassword},
		{"redis_password", "REDIS_PASSWORD_FILE", &cfg.RedisPassword},
		{"gemini_api_key", "GEMINI_API_KEY_FILE", &cfg.GeminiAPIKey},
		{"deepseek_api_key", "DEEPSEEK_API_KEY_FILE", &cfg.DeepSeekAPIKey},
	}

	for _, o := range overlays {
		if path := os.Getenv(o.fileEnv); path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", o.fileEnv, err)
			}
			*o.target = strings.TrimSpace(string(data))
			continue
		}
		if value := readSecret(o.secret); value != "" {
			*o.target = value
		}
	}
	return nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

// PostgresDSN returns the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}
