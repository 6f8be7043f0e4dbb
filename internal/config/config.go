package config

import (
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the shop lookup service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - HealthPort: The port for the monitoring server.
// - APIPort: The port for the public lookup API.
// - Provider: Geocoding provider selection and its credentials.
// - Country: The country the postal codes are resolved in.
// - OverpassURL: The endpoint of the Overpass interpreter.
// - Timeout: The timeout of a single request to any backend.
// - Database: Optional PostgreSQL settings for the lookup journal.
type Config struct {
	Env         string         `mapstructure:"env"`
	HealthPort  int            `mapstructure:"health_port"`
	APIPort     int            `mapstructure:"api_port"`
	Provider    ProviderConfig `mapstructure:"provider"`
	Country     string         `mapstructure:"country"`
	OverpassURL string         `mapstructure:"overpass_url"`
	Timeout     time.Duration  `mapstructure:"timeout"`
	Database    PostgresConfig `mapstructure:"postgres"`
}

// ProviderConfig selects the geocoding backend.
type ProviderConfig struct {
	Type      string `mapstructure:"type"`       // Type is one of nominatim, google, visicom.
	APIKey    string `mapstructure:"key"`        // APIKey is required for google and visicom.
	RateLimit int    `mapstructure:"rate_limit"` // RateLimit is requests per second.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`     // Host is the database server address.
	Port     string `mapstructure:"port"`     // Port is the database server port.
	User     string `mapstructure:"user"`     // User is the database user.
	Password string `mapstructure:"password"` // Password is the database user's password.
	Name     string `mapstructure:"db_name"`  // Name is the name of the database.
}

// Enabled reports whether enough settings are present to open the journal database.
func (p PostgresConfig) Enabled() bool {
	return p.Host != "" && p.Name != ""
}

// MustLoad reads a local .env file, an optional YAML file named by PITSTOP_CONFIG and the
// environment, in increasing order of precedence. It panics on values it cannot parse.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := newViper()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	timeout, err := time.ParseDuration(v.GetString("timeout"))
	if err != nil {
		panic("failed to parse timeout from configuration")
	}

	healthPort, err := strconv.Atoi(v.GetString("health_port"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	apiPort, err := strconv.Atoi(v.GetString("api_port"))
	if err != nil {
		panic("failed to parse port for api server from configuration")
	}

	rateLimit, err := strconv.Atoi(v.GetString("provider.rate_limit"))
	if err != nil {
		panic("failed to parse rate limit from configuration, must be an integer types")
	}

	return &Config{
		Env:        v.GetString("env"),
		HealthPort: healthPort,
		APIPort:    apiPort,
		Provider: ProviderConfig{
			Type:      v.GetString("provider.type"),
			APIKey:    v.GetString("provider.key"),
			RateLimit: rateLimit,
		},
		Country:     v.GetString("country"),
		OverpassURL: v.GetString("overpass_url"),
		Timeout:     timeout,
		Database: PostgresConfig{
			Host:     v.GetString("postgres.host"),
			Port:     v.GetString("postgres.port"),
			User:     v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			Name:     v.GetString("postgres.db_name"),
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("env", "production")
	v.SetDefault("health_port", "8080")
	v.SetDefault("api_port", "8081")
	v.SetDefault("provider.type", "nominatim")
	v.SetDefault("provider.rate_limit", "1")
	v.SetDefault("country", "us")
	v.SetDefault("overpass_url", "https://overpass-api.de/api/interpreter")
	v.SetDefault("timeout", "10s")
	v.SetDefault("postgres.port", "5432")

	bindings := map[string]string{
		"config":              "PITSTOP_CONFIG",
		"env":                 "PITSTOP_ENV",
		"health_port":         "PITSTOP_HEALTH_PORT",
		"api_port":            "PITSTOP_API_PORT",
		"provider.type":       "PITSTOP_PROVIDER_TYPE",
		"provider.key":        "PITSTOP_PROVIDER_KEY",
		"provider.rate_limit": "PITSTOP_RATE_LIMIT",
		"country":             "PITSTOP_COUNTRY",
		"overpass_url":        "PITSTOP_OVERPASS_URL",
		"timeout":             "PITSTOP_TIMEOUT",
		"postgres.host":       "DB_HOST",
		"postgres.port":       "DB_PORT",
		"postgres.user":       "DB_USERNAME",
		"postgres.password":   "DB_PASSWORD",
		"postgres.db_name":    "DB_NAME",
	}
	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}

	return v
}
