package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cloudinary CloudinaryConfig
	Upload     UploadConfig
	Auth       AuthConfig
	Reconcile  ReconcileConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host string
	Port string
}

// CloudinaryConfig holds the media transform service credentials. All three
// are required; the upload endpoints fail closed when any is missing.
type CloudinaryConfig struct {
	CloudName   string
	APIKey      string
	APISecret   string
	VideoFolder string
	ImageFolder string
}

func (c CloudinaryConfig) Complete() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type UploadConfig struct {
	MaxVideoSize int64 // bytes, enforced client-side before transfer
	BodyLimit    int64 // bytes, fiber body limit
}

type AuthConfig struct {
	JWTSecret string
}

type ReconcileConfig struct {
	// GracePeriod is how long a pending_delete row may sit before the
	// sweeper picks it up.
	GracePeriod time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "video_gallery"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName:   getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:      getEnv("CLOUDINARY_API_KEY", ""),
			APISecret:   getEnv("CLOUDINARY_API_SECRET", ""),
			VideoFolder: getEnv("CLOUDINARY_VIDEO_FOLDER", "video-gallery-uploads"),
			ImageFolder: getEnv("CLOUDINARY_IMAGE_FOLDER", "image-gallery-uploads"),
		},
		Upload: UploadConfig{
			MaxVideoSize: getEnvAsInt64("UPLOAD_MAX_VIDEO_SIZE", 70*1024*1024), // 70MB
			BodyLimit:    getEnvAsInt64("UPLOAD_BODY_LIMIT", 100*1024*1024),   // 100MB
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("AUTH_JWT_SECRET", ""),
		},
		Reconcile: ReconcileConfig{
			GracePeriod: getEnvAsDuration("RECONCILE_GRACE_PERIOD", time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
