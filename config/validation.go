package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is internally consistent for
// the current environment.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errs = append(errs, fmt.Sprintf("SERVER_PORT must be numeric, got %q", cfg.ServerPort))
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DBUser == "" {
			errs = append(errs, "DB_USER is required with the postgres driver")
		}
		if cfg.DBPassword == "" {
			errs = append(errs, "DB_PASSWORD is required with the postgres driver")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			errs = append(errs, "SQLITE_PATH is required with the sqlite driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown DB_DRIVER %q", cfg.DBDriver))
	}

	switch cfg.SnapshotBackend {
	case SnapshotFile:
		if cfg.DataDir == "" {
			errs = append(errs, "DATA_DIR is required with the file snapshot backend")
		}
	case SnapshotRedis, SnapshotMemory:
	default:
		errs = append(errs, fmt.Sprintf("unknown SNAPSHOT_BACKEND %q", cfg.SnapshotBackend))
	}

	if IsProduction() && cfg.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required in production")
	}

	for _, t := range []struct {
		name  string
		value float64
	}{
		{"TARGET_CALORIES", cfg.Targets.Calories},
		{"TARGET_PROTEIN", cfg.Targets.Protein},
		{"TARGET_CARBS", cfg.Targets.Carbs},
		{"TARGET_FAT", cfg.Targets.Fat},
		{"TARGET_FIBRE", cfg.Targets.Fibre},
	} {
		if t.value <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be positive", t.name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "\n"))
	}
	return nil
}
