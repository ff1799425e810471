package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Queries   QueriesConfig   `yaml:"queries"`
	Assistant AssistantConfig `yaml:"assistant"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// QueriesConfig holds listing defaults for support queries.
type QueriesConfig struct {
	DefaultPageSize int    `yaml:"default_page_size" env:"QUERIES_DEFAULT_PAGE_SIZE" env-default:"10"`
	MaxPageSize     int    `yaml:"max_page_size"     env:"QUERIES_MAX_PAGE_SIZE"     env-default:"100"`
	DefaultNaming   string `yaml:"default_naming"    env:"QUERIES_DEFAULT_NAMING"    env-default:"historical"`
}

// AssistantConfig holds settings for the text assistant. An empty APIKey
// disables the assistant.
type AssistantConfig struct {
	APIKey          string        `yaml:"api_key"            env:"ASSISTANT_API_KEY"`
	Model           string        `yaml:"model"              env:"ASSISTANT_MODEL"              env-default:"claude-sonnet-4-5"`
	MaxTokens       int64         `yaml:"max_tokens"         env:"ASSISTANT_MAX_TOKENS"         env-default:"1024"`
	Timeout         time.Duration `yaml:"timeout"            env:"ASSISTANT_TIMEOUT"            env-default:"30s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"ASSISTANT_RATE_LIMIT_PER_MIN" env-default:"20"`
}

// Enabled reports whether an assistant provider should be wired.
func (c AssistantConfig) Enabled() bool {
	return c.APIKey != ""
}
