package config

import (
	"log"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Per-call timeout for store operations, in milliseconds.
	StoreTimeoutMS int `mapstructure:"STORE_TIMEOUT_MS"`

	// AdminUserID receives new-restaurant approval notifications.
	AdminUserID string `mapstructure:"ADMIN_USER_ID"`

	// Turn duration in minutes per table size. Keys are table sizes as
	// strings because viper stringifies map keys.
	TurnIntervals       map[string]int `mapstructure:"TURN_INTERVALS"`
	DefaultTurnInterval int            `mapstructure:"DEFAULT_TURN_INTERVAL"`
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
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "thalibook")
	viper.SetDefault("STORE_TIMEOUT_MS", 5000)
	viper.SetDefault("ADMIN_USER_ID", "admin")
	viper.SetDefault("TURN_INTERVALS", map[string]int{"2": 60, "4": 90, "6": 120})
	viper.SetDefault("DEFAULT_TURN_INTERVAL", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// TurnIntervalFor returns the turn duration in minutes for a table size.
func TurnIntervalFor(size int) int {
	if mins, ok := AppConfig.TurnIntervals[strconv.Itoa(size)]; ok && mins > 0 {
		return mins
	}
	if AppConfig.DefaultTurnInterval > 0 {
		return AppConfig.DefaultTurnInterval
	}
	return 60
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
