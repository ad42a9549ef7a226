package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// TrackerPolicy selects when a delete marks a tracked section incomplete.
type TrackerPolicy string

const (
	// TrackerPolicyOnAnyDelete clears the flag on every delete, even when
	// other rows of the section remain. This mirrors the historical
	// behavior the frontend was built against.
	TrackerPolicyOnAnyDelete TrackerPolicy = "on_any_delete"
	// TrackerPolicyWhenSectionEmpty clears the flag only once zero rows of
	// the section remain.
	TrackerPolicyWhenSectionEmpty TrackerPolicy = "when_section_empty"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	Media     MediaConfig
	Directory DirectoryConfig
	Analytics AnalyticsConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// MediaConfig locates externally stored profile pictures.
type MediaConfig struct {
	BaseURL string
}

// DirectoryConfig holds account provisioning rules.
type DirectoryConfig struct {
	AllowedEmailDomain string
	DefaultPassword    string
	DefaultInstitution string
}

// AnalyticsConfig tunes view counting and tracker reconciliation.
type AnalyticsConfig struct {
	ViewDedupWindowSeconds      int
	TrackerIncompletePolicy     TrackerPolicy
	TrackerReconcileIntervalSec int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	policy := TrackerPolicy(getEnv("TRACKER_INCOMPLETE_POLICY", string(TrackerPolicyOnAnyDelete)))
	switch policy {
	case TrackerPolicyOnAnyDelete, TrackerPolicyWhenSectionEmpty:
	default:
		return nil, fmt.Errorf("invalid TRACKER_INCOMPLETE_POLICY: %s", policy)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "faculty-info-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Media: MediaConfig{
			BaseURL: getEnv("MEDIA_BASE_URL", "http://localhost:8080/media"),
		},
		Directory: DirectoryConfig{
			AllowedEmailDomain: getEnv("DIRECTORY_EMAIL_DOMAIN", "@mcc.edu.in"),
			DefaultPassword:    getEnv("DIRECTORY_DEFAULT_PASSWORD", "Mcc@123"),
			DefaultInstitution: getEnv("DIRECTORY_DEFAULT_INSTITUTION", "Madras Christian College"),
		},
		Analytics: AnalyticsConfig{
			ViewDedupWindowSeconds:      getEnvAsInt("VIEW_DEDUP_WINDOW_SECONDS", 300),
			TrackerIncompletePolicy:     policy,
			TrackerReconcileIntervalSec: getEnvAsInt("TRACKER_RECONCILE_INTERVAL_SECONDS", 0),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// ViewDedupWindow returns the suppression window for repeat profile views.
func (a AnalyticsConfig) ViewDedupWindow() time.Duration {
	if a.ViewDedupWindowSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(a.ViewDedupWindowSeconds) * time.Second
}

// TrackerReconcileInterval returns the reconciliation period; zero disables
// the background job.
func (a AnalyticsConfig) TrackerReconcileInterval() time.Duration {
	if a.TrackerReconcileIntervalSec <= 0 {
		return 0
	}
	return time.Duration(a.TrackerReconcileIntervalSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
