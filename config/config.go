package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nutridiary/backend/internal/nutrition"
)

// Snapshot backends for the food/weight log persistence bridge.
const (
	SnapshotFile   = "file"
	SnapshotRedis  = "redis"
	SnapshotMemory = "memory"
)

// Catalog database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Catalog database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Snapshot store configuration (food log / weight log persistence)
	SnapshotBackend string
	DataDir         string

	// Redis configuration (snapshot backend "redis")
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Daily nutrient targets (progress display only)
	Targets nutrition.Targets

	// AllowPastAdd permits logging new entries on any date inside the
	// 7-day window instead of today only.
	AllowPastAdd bool

	// CORSOrigins lists the allowed browser origins.
	CORSOrigins []string
}

// LoadConfig creates a new Config instance from environment variables. A
// .env file in the working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBDriver:   getEnv("DB_DRIVER", DriverSQLite),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "nutridiary"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "nutridiary.db"),

		SnapshotBackend: getEnv("SNAPSHOT_BACKEND", SnapshotFile),
		DataDir:         getEnv("DATA_DIR", "data"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisURL:      getEnv("REDIS_URL", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Targets, err = loadTargets(); err != nil {
		return nil, err
	}
	if cfg.AllowPastAdd, err = getEnvBool("ALLOW_PAST_ADD", false); err != nil {
		return nil, err
	}

	origins := getEnv("CORS_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadTargets() (nutrition.Targets, error) {
	var t nutrition.Targets
	var err error
	if t.Calories, err = getEnvFloat("TARGET_CALORIES", 2200); err != nil {
		return t, err
	}
	if t.Protein, err = getEnvFloat("TARGET_PROTEIN", 137.5); err != nil {
		return t, err
	}
	if t.Carbs, err = getEnvFloat("TARGET_CARBS", 330); err != nil {
		return t, err
	}
	if t.Fat, err = getEnvFloat("TARGET_FAT", 36.7); err != nil {
		return t, err
	}
	if t.Fibre, err = getEnvFloat("TARGET_FIBRE", 30); err != nil {
		return t, err
	}
	return t, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", key, v)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", key, v)
	}
	return f, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %q", key, v)
	}
	return b, nil
}
