package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Queue     QueueConfig
	Broker    BrokerConfig
}

type ServerConfig struct {
	Port            string
	Mode            string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	// Migrate applies the embedded schema on startup.
	Migrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// DevMode attributes unauthenticated requests to a development identity.
	// Never enable it outside local environments.
	DevMode   bool
	DevUserID int
	DevRole   string
}

type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

type QueueConfig struct {
	// Backend is either "redis" or "memory".
	Backend    string
	BufferSize int
	ConsumerID string
	// RetryDelay and MaxRetryCount apply to the memory backend.
	RetryDelay    time.Duration
	MaxRetryCount int
}

type BrokerConfig struct {
	URL         string
	QueueName   string
	DialTimeout time.Duration
	// RedialBackoff is how long publishes fail fast after a failed dial.
	RedialBackoff time.Duration
}

var AppConfig *Config

// LoadConfig reads .env (when present) and then the process environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	AppConfig = &Config{
		Server:    GetServerConfig(),
		Database:  GetDatabaseConfig(),
		Redis:     GetRedisConfig(),
		Auth:      GetAuthConfig(),
		RateLimit: GetRateLimitConfig(),
		Queue:     GetQueueConfig(),
		Broker:    GetBrokerConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // test database
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
		Migrate:  true,
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // test redis
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Port: "0", Mode: "test", ShutdownTimeout: time.Second},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Auth: AuthConfig{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		},
		RateLimit: RateLimitConfig{Enabled: false},
		Queue:     QueueConfig{Backend: "memory", BufferSize: 16},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:            getEnv("PORT", "8080"),
		Mode:            getEnv("GIN_MODE", "release"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "tourism"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		Migrate:  getEnvBool("DB_MIGRATE", true),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getEnvDuration("JWT_TTL", 24*time.Hour),
		DevMode:   getEnvBool("AUTH_DEV_MODE", false),
		DevUserID: getEnvInt("AUTH_DEV_USER_ID", 1),
		DevRole:   getEnv("AUTH_DEV_ROLE", "admin"),
	}
}

func GetRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        getEnvBool("RATE_LIMIT_ENABLED", false),
		Capacity:       getEnvInt("RATE_LIMIT_CAPACITY", 60),
		RefillTokens:   getEnvInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: getEnvDuration("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            getEnvDuration("RATE_LIMIT_TTL", 10*time.Minute),
		Prefix:         getEnv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if minTTL := 5 * cfg.RefillInterval; cfg.TTL < minTTL {
		cfg.TTL = minTTL
	}
	return cfg
}

func GetQueueConfig() QueueConfig {
	return QueueConfig{
		Backend:    strings.ToLower(getEnv("QUEUE_BACKEND", "redis")),
		BufferSize: getEnvInt("QUEUE_BUFFER_SIZE", 256),
		ConsumerID: getEnv("QUEUE_CONSUMER_ID", ""),

		RetryDelay:    getEnvDuration("QUEUE_RETRY_DELAY", 5*time.Second),
		MaxRetryCount: getEnvInt("QUEUE_MAX_RETRY_COUNT", 5),
	}
}

func GetBrokerConfig() BrokerConfig {
	return BrokerConfig{
		URL:       getEnv("RABBITMQ_URL", ""),
		QueueName: getEnv("RABBITMQ_QUEUE", "reservation.events"),

		DialTimeout:   getEnvDuration("RABBITMQ_DIAL_TIMEOUT", 2*time.Second),
		RedialBackoff: getEnvDuration("RABBITMQ_REDIAL_BACKOFF", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
