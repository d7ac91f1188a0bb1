package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Supplier (remote pricing/booking service) configuration.
	SupplierBaseURL string `mapstructure:"SUPPLIER_BASE_URL"`
	SupplierAPIKey  string `mapstructure:"SUPPLIER_API_KEY"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisTripDB    int    `mapstructure:"REDIS_TRIP_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Mongo configuration (booking archive).
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Funnel defaults.
	DefaultCurrency    string `mapstructure:"DEFAULT_CURRENCY"`
	DefaultNationality string `mapstructure:"DEFAULT_NATIONALITY"`
	DisplayPageSize    int    `mapstructure:"DISPLAY_PAGE_SIZE"`
	FetchBatchSize     int    `mapstructure:"FETCH_BATCH_SIZE"`
	ResendWindowSecs   int    `mapstructure:"RESEND_WINDOW_SECS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("SUPPLIER_BASE_URL", "https://api.nuitee.example.com/v2")
	viper.SetDefault("SUPPLIER_API_KEY", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_TRIP_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("DEFAULT_NATIONALITY", "US")
	viper.SetDefault("DISPLAY_PAGE_SIZE", 10)
	viper.SetDefault("FETCH_BATCH_SIZE", 25)
	viper.SetDefault("RESEND_WINDOW_SECS", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
