package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Queries.validate(); err != nil {
		return fmt.Errorf("queries: %w", err)
	}

	if c.Assistant.Enabled() {
		if c.Assistant.MaxTokens <= 0 {
			return fmt.Errorf("assistant.max_tokens must be > 0 (got %d)", c.Assistant.MaxTokens)
		}
		if c.Assistant.RateLimitPerMin <= 0 {
			return fmt.Errorf("assistant.rate_limit_per_min must be > 0 (got %d)", c.Assistant.RateLimitPerMin)
		}
	}

	return nil
}

func (q *QueriesConfig) validate() error {
	if q.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", q.MaxPageSize)
	}
	if q.DefaultPageSize <= 0 || q.DefaultPageSize > q.MaxPageSize {
		return fmt.Errorf("default_page_size must be in 1..%d (got %d)", q.MaxPageSize, q.DefaultPageSize)
	}

	switch strings.ToLower(strings.TrimSpace(q.DefaultNaming)) {
	case "historical", "current":
	default:
		return fmt.Errorf("default_naming must be historical or current (got %q)", q.DefaultNaming)
	}

	return nil
}
