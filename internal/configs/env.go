package configs

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrMissingMongoURI = errors.New("no ATLAS_URI environment variable has been defined")

type Config struct {
	MongoURI           string
	Port               string
	PortalDB           string
	EmployeesDB        string
	UploadsDir         string
	RequestTimeout     time.Duration
	LogLevel           zerolog.Level
	RedisURL           string
	RateLimitPerMinute int
	CORSOrigins        []string
	// TrustedProxies may set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string
	MaxUploadBytes     int64
}

// LoadConfig reads .env (when present) and the process environment.
// ATLAS_URI is the only required variable.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using process environment")
	}

	cfg := &Config{
		MongoURI:           EnvMongoURI(),
		Port:               getEnv("PORT", "5200"),
		PortalDB:           getEnv("PORTAL_DB", "job-portal"),
		EmployeesDB:        getEnv("EMPLOYEES_DB", "meanStackExample"),
		UploadsDir:         getEnv("UPLOADS_DIR", "uploads"),
		RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		LogLevel:           getEnvLevel("LOG_LEVEL", zerolog.InfoLevel),
		RedisURL:           getEnv("REDIS_URL", ""),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "*")),
		TrustedProxies:     splitList(getEnv("TRUSTED_PROXIES", "")),
		MaxUploadBytes:     int64(getEnvInt("MAX_UPLOAD_MB", 8)) << 20,
	}

	if cfg.MongoURI == "" {
		return nil, ErrMissingMongoURI
	}
	return cfg, nil
}

func EnvMongoURI() string {
	return os.Getenv("ATLAS_URI")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func getEnvLevel(key string, fallback zerolog.Level) zerolog.Level {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		log.Warn().Str("value", raw).Msg("Unknown LOG_LEVEL, using default")
		return fallback
	}
	return level
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
