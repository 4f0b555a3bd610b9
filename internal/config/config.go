package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends accepted in STORE_BACKEND.
const (
	BackendDynamo = "dynamo"
	BackendRedis  = "redis"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort          string
	AppEnv           string
	// Gmail account used as both SMTP login and sender address.
	GmailUser        string
	GmailAppPassword string
	SMTPHost         string
	SMTPPort         int
	StoreBackend     string
	AWSRegion        string
	AWSEndpointURL   string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID   string
	AWSSecretKey     string
	DynamoTables     DynamoTables
	Redis            RedisConfig
	SweepEnabled     bool
	SweepInterval    time.Duration
	TaskTokenSecret  string
	AllowedOrigins   []string // CORS allowed origins
	RateLimitRPS     float64
	RateLimitBurst   int
	// Trust X-Forwarded-For / X-Real-IP; only set behind a proxy that overwrites them.
	TrustProxy       bool
}

// DynamoTables holds the DynamoDB table name for each collection.
type DynamoTables struct {
	OTPs string
}

// RedisConfig holds connection settings for the redis store backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:          getEnv("APP_PORT", "3000"),
		AppEnv:           getEnv("APP_ENV", "development"),
		GmailUser:        getEnv("GMAIL_USER", ""),
		GmailAppPassword: getEnv("GMAIL_APP_PASSWORD", ""),
		SMTPHost:         getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		StoreBackend:     strings.ToLower(getEnv("STORE_BACKEND", BackendDynamo)),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL:   getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID:   getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:     getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			OTPs: getEnv("DYNAMO_TABLE_OTPS", "otps"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "focus"),
		},
		SweepEnabled:    getEnvBool("SWEEP_ENABLED", true),
		SweepInterval:   getEnvDuration("SWEEP_INTERVAL", time.Hour),
		TaskTokenSecret: getEnv("TASK_TOKEN_SECRET", ""),
		AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 10),
		TrustProxy:      getEnvBool("TRUST_PROXY", false),
	}
}

// MailConfigured reports whether both Gmail credentials are present.
func (c *Config) MailConfigured() bool {
	return c.GmailUser != "" && c.GmailAppPassword != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
