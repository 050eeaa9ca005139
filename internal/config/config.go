package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	StaticDir     string `mapstructure:"STATIC_DIR"`

	MapboxToken     string        `mapstructure:"MAPBOX_TOKEN"`
	MapboxBaseURL   string        `mapstructure:"MAPBOX_BASE_URL"`
	GeocodeTimeout  time.Duration `mapstructure:"GEOCODE_TIMEOUT"`
	GeocodeCacheTTL time.Duration `mapstructure:"GEOCODE_CACHE_TTL"`

	CatalogPath  string `mapstructure:"CATALOG_PATH"`
	CatalogWatch bool   `mapstructure:"CATALOG_WATCH"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	RateLimitQPS        int `mapstructure:"RATE_LIMIT_QPS"`
	MaxComplimentLength int `mapstructure:"MAX_COMPLIMENT_LENGTH"`
}

var keys = []string{
	"DB_SOURCE", "SERVER_ADDRESS", "STATIC_DIR",
	"MAPBOX_TOKEN", "MAPBOX_BASE_URL", "GEOCODE_TIMEOUT", "GEOCODE_CACHE_TTL",
	"CATALOG_PATH", "CATALOG_WATCH",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"LOG_LEVEL", "LOG_FORMAT",
	"RATE_LIMIT_QPS", "MAX_COMPLIMENT_LENGTH",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("STATIC_DIR", "./web")
	v.SetDefault("MAPBOX_BASE_URL", "https://api.mapbox.com")
	v.SetDefault("GEOCODE_TIMEOUT", 5*time.Second)
	v.SetDefault("GEOCODE_CACHE_TTL", 24*time.Hour)
	v.SetDefault("CATALOG_PATH", "./data.json")
	v.SetDefault("CATALOG_WATCH", true)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("RATE_LIMIT_QPS", 0)
	v.SetDefault("MAX_COMPLIMENT_LENGTH", 500)
}

// LoadConfig reads configuration from app.env in path, letting environment
// variables override file values. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	var config Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	// AutomaticEnv only applies to keys viper already knows about.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return config, fmt.Errorf("config: bind %s: %w", k, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: read: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: unmarshal: %w", err)
	}

	if config.DBSource == "" {
		return config, errors.New("config: DB_SOURCE is required")
	}

	return config, nil
}
