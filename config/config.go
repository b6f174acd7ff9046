package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Remote   RemoteConfig
	Listing  ListingConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Addr     string
	LogLevel string
}

// RemoteConfig points at the event service API.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

type ListingConfig struct {
	PageSize int
	// StateBackend is "memory" or "redis".
	StateBackend string
	StateTTL     time.Duration
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	AppConfig = &Config{
		Server:   GetServerConfig(),
		Remote:   GetRemoteConfig(),
		Listing:  GetListingConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Enabled:  true,
		Host:     "localhost",
		Port:     "5433", // test DB listens on 5433
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // test Redis listens on 6380
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Addr: ":0", LogLevel: "debug"},
		Remote:   RemoteConfig{BaseURL: "http://localhost:5243/api", Timeout: 5 * time.Second},
		Listing:  ListingConfig{PageSize: 6, StateBackend: "redis", StateTTL: time.Minute},
		Database: *testConfig,
		Redis:    testRedisConfig,
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Addr:     getEnv("SERVER_ADDR", ":8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func GetRemoteConfig() RemoteConfig {
	return RemoteConfig{
		BaseURL: getEnv("EVENT_API_URL", "http://localhost:5243/api"),
		Timeout: getDuration("EVENT_API_TIMEOUT", 15*time.Second),
	}
}

func GetListingConfig() ListingConfig {
	return ListingConfig{
		PageSize:     getInt("LISTING_PAGE_SIZE", 6),
		StateBackend: getEnv("LISTING_STATE_BACKEND", "memory"),
		StateTTL:     getDuration("LISTING_STATE_TTL", 30*time.Minute),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	enabled, err := strconv.ParseBool(getEnv("JOURNAL_ENABLED", "false"))
	if err != nil {
		panic(err)
	}

	return DatabaseConfig{
		Enabled:  enabled,
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getInt("REDIS_DB", 0),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		panic(err)
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		panic(err)
	}
	return v
}
