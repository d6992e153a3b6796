package config

import (
	"fmt"
	"strings"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.MaxTokens < 0 {
		errs = append(errs, fmt.Sprintf("max_tokens: must be non-negative, got %d", cfg.MaxTokens))
	}

	if cfg.Temperature != nil && (*cfg.Temperature < 0 || *cfg.Temperature > 1) {
		errs = append(errs, fmt.Sprintf("temperature: must be between 0.0 and 1.0, got %g", *cfg.Temperature))
	}

	if cfg.TopP != nil && (*cfg.TopP <= 0 || *cfg.TopP > 1) {
		errs = append(errs, fmt.Sprintf("top_p: must be in (0.0, 1.0], got %g", *cfg.TopP))
	}

	for _, origin := range cfg.CORSOrigins {
		if strings.TrimSpace(origin) == "" {
			errs = append(errs, "cors_origins: entries must be non-empty")
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
