package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends accepted by STORE_BACKEND.
const (
	StoreBackendMemory   = "memory"
	StoreBackendRedis    = "redis"
	StoreBackendDynamoDB = "dynamodb"
	StoreBackendPostgres = "postgres"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP       HTTPConfig
	Store      StoreConfig
	Submission SubmissionConfig
	Session    SessionConfig
	Auth       AuthConfig
	Dashboard  DashboardConfig
}

type HTTPConfig struct {
	Port    int
	GinMode string
}

// StoreConfig selects and configures the key-value store behind the ledger.
type StoreConfig struct {
	Backend  string
	Redis    RedisConfig
	DynamoDB DynamoDBConfig
	Postgres PostgresConfig

	// LedgerKeyPrefix is prepended to the user id to form a ledger key.
	LedgerKeyPrefix string
}

type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	Table           string
}

type PostgresConfig struct {
	DSN   string
	Table string
}

// SubmissionConfig drives the simulated backend write.
type SubmissionConfig struct {
	Delay time.Duration
	Fail  bool
}

type SessionConfig struct {
	TTL time.Duration
}

// AuthConfig enables Bearer token identity when JWTSecret is set; otherwise
// the X-User-ID header is trusted.
type AuthConfig struct {
	JWTSecret string
}

type DashboardConfig struct {
	IncludeSamples bool
}

const (
	defaultPort            = 8080
	defaultStoreBackend    = StoreBackendMemory
	defaultRedisAddr       = "localhost:6379"
	defaultAWSRegion       = "us-east-1"
	defaultKVTable         = "kv_store"
	defaultLedgerKeyPrefix = "requests_"
	defaultSubmissionDelay = 1500 * time.Millisecond
	defaultSessionTTL      = 30 * time.Minute
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			GinMode: os.Getenv("GIN_MODE"),
		},
		Store: StoreConfig{
			Backend: strings.ToLower(valueOrDefault("STORE_BACKEND", defaultStoreBackend)),
			Redis: RedisConfig{
				Addr:     valueOrDefault("REDIS_ADDR", defaultRedisAddr),
				Username: os.Getenv("REDIS_USERNAME"),
				Password: os.Getenv("REDIS_PASSWORD"),
				DB:       parseIntWithDefault("REDIS_DB", 0),
			},
			DynamoDB: DynamoDBConfig{
				Region:          valueOrDefault("AWS_REGION", defaultAWSRegion),
				AccessKeyID:     valueOrDefault("AWS_ACCESS_KEY_ID", "local"),
				SecretAccessKey: valueOrDefault("AWS_SECRET_ACCESS_KEY", "local"),
				Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
				Table:           valueOrDefault("KV_TABLE", defaultKVTable),
			},
			Postgres: PostgresConfig{
				DSN:   os.Getenv("POSTGRES_DSN"),
				Table: valueOrDefault("KV_PG_TABLE", defaultKVTable),
			},
			LedgerKeyPrefix: valueOrDefault("LEDGER_KEY_PREFIX", defaultLedgerKeyPrefix),
		},
		Submission: SubmissionConfig{
			Fail: parseBoolWithDefault("SUBMISSION_FAIL", false),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		},
		Dashboard: DashboardConfig{
			IncludeSamples: parseBoolWithDefault("DASHBOARD_INCLUDE_SAMPLES", true),
		},
	}

	port, err := parsePort("PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	switch cfg.Store.Backend {
	case StoreBackendMemory, StoreBackendRedis, StoreBackendDynamoDB:
	case StoreBackendPostgres:
		if cfg.Store.Postgres.DSN == "" {
			return Config{}, fmt.Errorf("POSTGRES_DSN is required when STORE_BACKEND=%s", StoreBackendPostgres)
		}
	default:
		return Config{}, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.Store.Backend)
	}

	if cfg.Submission.Delay, err = parseDurationWithDefault("SUBMISSION_DELAY", defaultSubmissionDelay); err != nil {
		return Config{}, err
	}
	if cfg.Session.TTL, err = parseDurationWithDefault("SESSION_TTL", defaultSessionTTL); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}

func parseDurationWithDefault(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: negative duration", key)
	}
	return d, nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
