package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

const (
	EnvDev = "dev"

	defaultJWTSecret = "change-me"
)

var ErrInsecureJWTSecret = errors.New("JWT_SECRET_KEY must be set outside dev")

type Config struct {
	AppPort            string
	AppEnv             string
	StorageDriver      string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	DbParams           string
	SQLitePath         string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	RedisPrefix        string
	JWTSecret          string
	JWTTTL             time.Duration
	SeedPassword       string
	AttachmentsDir     string
	MaxUploadBytes     int64
	Timezone           string
	TrustedProxies     []string
	CORSAllowedOrigins []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:            getEnv("APP_PORT", "8080"),
		AppEnv:             getEnv("APP_ENV", "prod"),
		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", StorageSQLite)),
		DbHost:             getEnv("MYSQL_HOST", "db"),
		DbPort:             getEnv("MYSQL_PORT", "3306"),
		DbUser:             getEnv("MYSQL_USER", "kanban"),
		DbPassword:         getEnv("MYSQL_PASSWORD", "kanban"),
		DbName:             getEnv("MYSQL_DATABASE", "kanban"),
		DbParams:           getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		SQLitePath:         getEnv("SQLITE_PATH", "kanban.db"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPrefix:        getEnv("REDIS_PREFIX", "kanbanpro"),
		JWTSecret:          getEnv("JWT_SECRET_KEY", defaultJWTSecret),
		JWTTTL:             getEnvDuration("JWT_TTL", 24*time.Hour),
		SeedPassword:       getEnv("SEED_PASSWORD", "kanban123"),
		AttachmentsDir:     getEnv("ATTACHMENTS_DIR", "data/attachments"),
		MaxUploadBytes:     int64(getEnvInt("MAX_UPLOAD_BYTES", 25<<20)),
		Timezone:           getEnv("TIMEZONE", "UTC"),
		TrustedProxies:     parseList(os.Getenv("TRUSTED_PROXIES")),
		CORSAllowedOrigins: parseList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

// Validate rejects settings that are only acceptable for local development.
func (c *Config) Validate() error {
	if c.AppEnv == EnvDev {
		return nil
	}
	if secret := strings.TrimSpace(c.JWTSecret); secret == "" || secret == defaultJWTSecret {
		return ErrInsecureJWTSecret
	}
	return nil
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
