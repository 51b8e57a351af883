package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Variable names kept for deployments configured with the JWT_* names.
const (
	legacyTokenSecretEnv  = "JWT_SECRET"
	legacyTokenExpiresEnv = "JWT_EXPIRES_IN"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// JWT_SECRET and JWT_EXPIRES_IN are honoured when the structured APP_ names
// are unset. JWT_EXPIRES_IN accepts Go durations and the "<n>d" day form.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = os.Getenv(legacyTokenSecretEnv)
	}

	if expiresIn := os.Getenv(legacyTokenExpiresEnv); cfg.App.TokenDuration == 0 && expiresIn != "" {
		d, err := parseLooseDuration(expiresIn)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", legacyTokenExpiresEnv, err)
		}
		cfg.App.TokenDuration = d
	}

	return nil
}

// parseLooseDuration parses Go durations plus whole days ("7d") and bare
// seconds ("3600").
func parseLooseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, err
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	if seconds, err := strconv.Atoi(s); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	return time.ParseDuration(s)
}
