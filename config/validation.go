package config

import (
	"fmt"
	"net"
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

// ValidationErrors collects every problem found in a Config
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Error()
	}
	return "configuration validation failed:\n" + strings.Join(msgs, "\n")
}

// ValidateConfig checks that cfg is usable in the current environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if cfg.Server.Port == "" {
		add("server.port", "is required")
	}
	for _, proxy := range cfg.Server.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				add("server.trusted_proxies", fmt.Sprintf("%q is not an IP or CIDR", proxy))
			}
		}
	}

	switch cfg.Database.Driver {
	case "sqlite":
		if cfg.Database.Path == "" {
			add("database.path", "is required for the sqlite driver")
		}
	case "postgres":
		if cfg.Database.Host == "" {
			add("database.host", "is required for the postgres driver")
		}
		if cfg.Database.Name == "" {
			add("database.name", "is required for the postgres driver")
		}
		if cfg.Database.User == "" {
			add("database.user", "is required for the postgres driver")
		}
		if IsProduction() && cfg.Database.Password == "" {
			add("database.password", "db_password secret is required in production")
		}
	default:
		add("database.driver", fmt.Sprintf("unsupported driver %q (want sqlite or postgres)", cfg.Database.Driver))
	}

	if cfg.RateLimit.Enabled {
		if cfg.Redis.URL == "" && cfg.Redis.Host == "" {
			add("redis", "redis host or url is required when rate limiting is enabled")
		}
		if cfg.RateLimit.Limit <= 0 {
			add("rate_limit.limit", "must be greater than zero")
		}
		if cfg.RateLimit.Window <= 0 {
			add("rate_limit.window", "must be greater than zero")
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
