package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Document store selection: "firebase" or "mongo".
	StoreDriver string `mapstructure:"STORE_DRIVER"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	MongoDBName string `mapstructure:"MONGO_DB_NAME"`

	// Firebase project.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseDatabaseURL     string `mapstructure:"FIREBASE_DATABASE_URL"`
	FirebaseStorageBucket   string `mapstructure:"FIREBASE_STORAGE_BUCKET"`

	// Asset store selection: "firebase" or "cloudinary".
	AssetDriver         string `mapstructure:"ASSET_DRIVER"`
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	RemoteCallTimeout             time.Duration `mapstructure:"REMOTE_CALL_TIMEOUT"`
	ProviderSnapshotTTL           time.Duration `mapstructure:"PROVIDER_SNAPSHOT_TTL"`
	SnapshotRefreshSpec           string        `mapstructure:"SNAPSHOT_REFRESH_SPEC"`
	ServiceType                   string        `mapstructure:"SERVICE_TYPE"`
	NotificationWorkerConcurrency int           `mapstructure:"NOTIFICATION_WORKER_CONCURRENCY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("STORE_DRIVER", "firebase")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB_NAME", "helperhub")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json")
	viper.SetDefault("FIREBASE_DATABASE_URL", "")
	viper.SetDefault("FIREBASE_STORAGE_BUCKET", "")
	viper.SetDefault("ASSET_DRIVER", "firebase")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("REMOTE_CALL_TIMEOUT", 10*time.Second)
	viper.SetDefault("PROVIDER_SNAPSHOT_TTL", 5*time.Minute)
	viper.SetDefault("SNAPSHOT_REFRESH_SPEC", "@every 5m")
	viper.SetDefault("SERVICE_TYPE", "short-term")
	viper.SetDefault("NOTIFICATION_WORKER_CONCURRENCY", 10)

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

// RemoteTimeout returns the bound applied to every call against an external
// service. A zero value (config not loaded, e.g. in tests) falls back to 10s.
func RemoteTimeout() time.Duration {
	if AppConfig.RemoteCallTimeout <= 0 {
		return 10 * time.Second
	}
	return AppConfig.RemoteCallTimeout
}

// UsesMongo reports whether repositories are backed by MongoDB instead of the
// Firebase Realtime Database.
func UsesMongo() bool {
	return AppConfig.StoreDriver == "mongo"
}
