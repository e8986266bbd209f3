package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Redis    RedisConfig
	Admin    AdminConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	AppEnv      string
	Port        string
	CORSOrigins []string
}

type LoggerConfig struct {
	Mode string
}

type DatabaseConfig struct {
	Driver     string // postgres | sqlite
	URL        string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
	SeedData   bool
}

type SessionConfig struct {
	Backend string // cookie | redis
	Secret  string
	Name    string
	MaxAge  time.Duration
	Secure  bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AdminConfig struct {
	APIKey    string
	JWTSecret string
}

type CatalogConfig struct {
	PageSize int
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			AppEnv:      getEnv("APP_ENV", "development"),
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: getEnvSlice("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		},
		Logger: LoggerConfig{
			Mode: getEnv("LOGGER_MODE", getEnv("APP_ENV", "development")),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			URL:        getEnv("DATABASE_URL", ""),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			Name:       getEnv("DB_NAME", "sportsstore"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "sportsstore.db"),
			SeedData:   getEnvBool("SEED_DATA", true),
		},
		Session: SessionConfig{
			Backend: getEnv("SESSION_BACKEND", "cookie"),
			Secret:  getEnv("SESSION_SECRET", "change-me-session-secret"),
			Name:    getEnv("SESSION_NAME", "sportsstore"),
			MaxAge:  time.Duration(getEnvInt("SESSION_MAX_AGE_HOURS", 24*30)) * time.Hour,
			Secure:  getEnvBool("SESSION_SECURE", false),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Admin: AdminConfig{
			APIKey:    getEnv("ADMIN_API_KEY", ""),
			JWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
		},
		Catalog: CatalogConfig{
			PageSize: getEnvInt("CATALOG_PAGE_SIZE", 12),
		},
	}
}

// DSN builds the postgres connection string. DATABASE_URL wins when set.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

func (s ServerConfig) IsProduction() bool {
	switch strings.ToLower(s.AppEnv) {
	case "prod", "production":
		return true
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return fallback
}
