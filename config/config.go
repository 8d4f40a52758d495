package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`
	RedisContextDB   int    `mapstructure:"REDIS_CONTEXT_DB"`
	RedisReminderDB  int    `mapstructure:"REDIS_REMINDER_DB"`
	ContextTTLMins   int    `mapstructure:"CONTEXT_TTL_MINS"`

	// External API keys.
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	GoogleMapsAPIKey  string `mapstructure:"GOOGLE_MAPS_API_KEY"`
	OpenWeatherAPIKey string `mapstructure:"OPENWEATHER_API_KEY"`

	// Conversation limits.
	MaxConversationHistory int `mapstructure:"MAX_CONVERSATION_HISTORY"`
	MaxResponseTokens      int `mapstructure:"MAX_RESPONSE_TOKENS"`

	// Weather cache refresh interval in minutes.
	WeatherUpdateMins int `mapstructure:"WEATHER_UPDATE_MINS"`

	// Places search radius in meters.
	MapsSearchRadius int `mapstructure:"MAPS_SEARCH_RADIUS"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CONTEXT_DB", 1)
	viper.SetDefault("REDIS_REMINDER_DB", 2)
	viper.SetDefault("CONTEXT_TTL_MINS", 720)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GOOGLE_MAPS_API_KEY", "")
	viper.SetDefault("OPENWEATHER_API_KEY", "")
	viper.SetDefault("MAX_CONVERSATION_HISTORY", 20)
	viper.SetDefault("MAX_RESPONSE_TOKENS", 500)
	viper.SetDefault("WEATHER_UPDATE_MINS", 30)
	viper.SetDefault("MAPS_SEARCH_RADIUS", 2000)

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
