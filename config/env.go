package config

import (
	"os"
	"strings"
)

// Environment is the deployment the server runs in
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment reads APP_ENV, falling back to ENV. CI=true wins over both.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = os.Getenv("ENV")
	}
	switch Environment(strings.ToLower(env)) {
	case Production, "prod":
		return Production
	case Test:
		return Test
	default:
		return Development
	}
}

// IsProduction reports whether secrets must come from SECRETS_DIR
func IsProduction() bool {
	return GetEnvironment() == Production
}

// defaultLogFormat is human readable output for local development only
func defaultLogFormat() string {
	if GetEnvironment() == Development {
		return "console"
	}
	return "json"
}
