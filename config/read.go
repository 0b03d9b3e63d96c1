package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName   = "config"
	configFormat = "yaml"
)

func ReadConfig(configPath string) (*Config, error) {
	// Start from a clean slate so repeated reads see no stale state.
	viper.Reset()

	viper.SetConfigName(configName)
	viper.SetConfigType(configFormat)
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. MARKETBLOOM_DATABASE_HOST overrides database.host
	viper.SetEnvPrefix("MARKETBLOOM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()
	bindEnvKeys()

	// The config file is optional in containerized deployments where
	// everything arrives through the environment.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if os.Getenv("MARKETBLOOM_AUTH_API_KEY") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 15)
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.pool.max_open_conns", 25)
	viper.SetDefault("database.pool.max_idle_conns", 5)
	viper.SetDefault("database.pool.conn_max_lifetime_minutes", 5)
	viper.SetDefault("email.smtp.port", 587)
	viper.SetDefault("email.smtp.timeout_seconds", 30)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output.stdout", true)
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.path", "/metrics")
	viper.SetDefault("static.dir", "web/dist")
	viper.SetDefault("static.index", "index.html")
	viper.SetDefault("static.admin_page", "web/admin.html")
}

// bindEnvKeys registers the keys that have no default. Unmarshal only consults
// the environment for keys viper already knows about, so without an explicit
// bind these would be invisible when no config file is present.
func bindEnvKeys() {
	for _, key := range []string{
		"auth.api_key",
		"auth.admin_secret",
		"database.user",
		"database.password",
		"database.dbname",
		"email.enabled",
		"email.from",
		"email.to",
		"email.smtp.host",
		"email.smtp.username",
		"email.smtp.password",
	} {
		viper.BindEnv(key) //nolint:errcheck // only errors on an empty key
	}
}
