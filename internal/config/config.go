package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Logger   Logger   `mapstructure:"logger"`
	Server   Server   `mapstructure:"server"`
	Database Database `mapstructure:"database"`
	Client   Client   `mapstructure:"client"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Server holds the configuration for the HTTP API server.
type Server struct {
	Port            int     `mapstructure:"port"`
	RateLimit       float64 `mapstructure:"rate_limit"`
	RateLimitBurst  int     `mapstructure:"rate_limit_burst"`
	ShutdownTimeout int     `mapstructure:"shutdown_timeout"` // seconds
}

// Database holds the configuration for the sqlite key-value store.
type Database struct {
	DSN string `mapstructure:"dsn"`
}

// Client holds the configuration the CLI uses to reach the server.
type Client struct {
	BaseURL        string  `mapstructure:"base_url"`
	Timeout        int     `mapstructure:"timeout"` // seconds
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
	MaxRetries     int     `mapstructure:"max_retries"`
}

// LoadConfig reads configuration from path/config.yml and TICKR_* environment
// variables. A missing config file is not an error; defaults apply.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix("tickr")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 50) // requests per second
	v.SetDefault("server.rate_limit_burst", 20)
	v.SetDefault("server.shutdown_timeout", 10)

	v.SetDefault("database.dsn", "tickr.db")

	v.SetDefault("client.base_url", "http://localhost:8080")
	v.SetDefault("client.timeout", 10)
	v.SetDefault("client.rate_limit", 10)
	v.SetDefault("client.rate_limit_burst", 5)
	v.SetDefault("client.max_retries", 3)
}
