package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// ValidateConfig checks if the configuration meets the requirements for the given environment
func ValidateConfig(env Environment, cfg *Config) error {
	var errs ValidationErrors

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "is required"})
	}

	switch cfg.StorageDriver {
	case StorageMemory, StorageSQLite, StoragePostgres:
	default:
		errs = append(errs, ValidationError{"STORAGE_DRIVER", fmt.Sprintf("unknown driver %q", cfg.StorageDriver)})
	}

	if cfg.StorageDriver == StorageSQLite && cfg.SQLitePath == "" {
		errs = append(errs, ValidationError{"SQLITE_PATH", "is required for sqlite storage"})
	}

	if env == Production && cfg.StorageDriver != StoragePostgres {
		errs = append(errs, ValidationError{"STORAGE_DRIVER", "production requires postgres storage"})
	}

	if cfg.StorageDriver == StoragePostgres || env == Production {
		for field, value := range map[string]string{
			"DB_HOST":     cfg.DBHost,
			"DB_PORT":     cfg.DBPort,
			"DB_USER":     cfg.DBUser,
			"DB_NAME":     cfg.DBName,
			"DB_PASSWORD": cfg.DBPassword,
		} {
			if value == "" {
				errs = append(errs, ValidationError{field, "is required for postgres storage"})
			}
		}
	}

	switch cfg.LLMProvider {
	case ProviderGemini, ProviderDeepSeek, ProviderNone:
	default:
		errs = append(errs, ValidationError{"LLM_PROVIDER", fmt.Sprintf("unknown provider %q", cfg.LLMProvider)})
	}

	if cfg.LLMRequired {
		switch {
		case cfg.LLMProvider == ProviderNone:
			errs = append(errs, ValidationError{"LLM_PROVIDER", "a provider is required when LLM_REQUIRED is set"})
		case cfg.LLMProvider == ProviderGemini && cfg.GeminiAPIKey == "":
			errs = append(errs, ValidationError{"GEMINI_API_KEY", "is required for the gemini provider"})
		case cfg.LLMProvider == ProviderDeepSeek && cfg.DeepSeekAPIKey == "":
			errs = append(errs, ValidationError{"DEEPSEEK_API_KEY", "is required for the deepseek provider"})
		}
	}

	if cfg.GenerateRateLimit < 0 {
		errs = append(errs, ValidationError{"GENERATE_RATE_LIMIT", "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
