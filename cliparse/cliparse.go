// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendFile     = "file"
	BackendS3       = "s3"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port int

	// Storage
	StoreBackend string
	DataFile     string
	Bucket       string
	Key          string
	DatabaseURL  string
	RedisURL     string

	// Voting
	ValidFor time.Duration

	// Chat
	Channel       string
	VerifyToken   string
	SigningSecret string

	// Events
	AMQPURL   string
	AMQPQueue string
}

// LoadDotEnv loads variables from .env style files into the environment.
// Missing files are skipped; variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var validFor int

	fs := flag.NewFlagSet("lunch-bot", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")

	// Storage (backend selection is usually env-driven per deployment)
	fs.StringVar(&cfg.StoreBackend, "store", "", "Storage backend (file, s3, sqlite, postgres, redis)")
	fs.StringVar(&cfg.DataFile, "data-file", "", "Data file path for the file backend")
	fs.StringVar(&cfg.Bucket, "bucket", "", "S3 bucket name")
	fs.StringVar(&cfg.Key, "key", "", "Object key for the s3 and redis backends")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for the sqlite and postgres backends")
	fs.StringVar(&cfg.RedisURL, "redis-url", "", "Redis address or URL")

	fs.IntVar(&validFor, "valid-for", 0, "Minutes a new vote stays open")

	fs.StringVar(&cfg.Channel, "channel", "", "Only handle events from this channel")
	fs.StringVar(&cfg.VerifyToken, "verify-token", "", "Webhook verification token (prefer env)")
	fs.StringVar(&cfg.SigningSecret, "signing-secret", "", "Webhook signing secret (prefer env)")

	fs.StringVar(&cfg.AMQPURL, "amqp-url", "", "RabbitMQ URL for vote events")
	fs.StringVar(&cfg.AMQPQueue, "amqp-queue", "", "RabbitMQ queue for vote events")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if validFor == 0 {
		if s := os.Getenv("VALID_FOR"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid VALID_FOR env variable")
			}
			validFor = n
		} else {
			validFor = 60
		}
	}
	if validFor <= 0 {
		return Config{}, errors.New("valid-for must be a positive number of minutes")
	}
	cfg.ValidFor = time.Duration(validFor) * time.Minute

	envDefault(&cfg.StoreBackend, "STORE_BACKEND", BackendFile)
	envDefault(&cfg.DataFile, "DATA_FILE", "data.json")
	envDefault(&cfg.Bucket, "S3_BUCKET", "")
	envDefault(&cfg.Key, "STORE_KEY", "data.json")
	envDefault(&cfg.DatabaseURL, "DATABASE_URL", "")
	envDefault(&cfg.RedisURL, "REDIS_URL", "")
	envDefault(&cfg.Channel, "CHANNEL", "")
	envDefault(&cfg.VerifyToken, "VERIFY_TOKEN", "")
	envDefault(&cfg.SigningSecret, "SIGNING_SECRET", "")
	envDefault(&cfg.AMQPURL, "AMQP_URL", "")
	envDefault(&cfg.AMQPQueue, "AMQP_QUEUE", "lunch-votes")

	// Backend-specific requirements
	switch cfg.StoreBackend {
	case BackendFile:
	case BackendS3:
		if cfg.Bucket == "" {
			return Config{}, errors.New("bucket required for s3 backend (use -bucket or S3_BUCKET env)")
		}
	case BackendSQLite, BackendPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	case BackendRedis:
		if cfg.RedisURL == "" {
			return Config{}, errors.New("redis URL required (use -redis-url or REDIS_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.StoreBackend)
	}

	return cfg, nil
}

// envDefault fills an unset value from the environment, then from def
func envDefault(dst *string, env, def string) {
	if *dst != "" {
		return
	}
	if v := os.Getenv(env); v != "" {
		*dst = v
		return
	}
	*dst = def
}
