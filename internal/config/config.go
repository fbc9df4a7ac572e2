package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Seed source names
const (
	SeedSourceEmbedded = "embedded"
	SeedSourceFile     = "file"
	SeedSourcePostgres = "postgres"
	SeedSourceS3       = "s3"
)

// Config holds all application configuration
type Config struct {
	Server   Server   `yaml:"server"`
	Log      Log      `yaml:"log"`
	Seed     Seed     `yaml:"seed"`
	Pipeline Pipeline `yaml:"pipeline"`
	Database Database `yaml:"database"`
	S3       S3       `yaml:"s3"`
}

// Server holds HTTP server configuration
type Server struct {
	Host         string        `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port         string        `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
}

// Address returns the full server address
func (s Server) Address() string {
	return s.Host + ":" + s.Port
}

// Log holds logging configuration
type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// SlogLevel maps the configured level to a slog level
func (l Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Seed selects where the startup reference data comes from
type Seed struct {
	Source string `yaml:"source" env:"SEED_SOURCE" env-default:"embedded"` // embedded, file, postgres, s3
	Path   string `yaml:"path" env:"SEED_PATH"`                            // file source
	S3Key  string `yaml:"s3_key" env:"SEED_S3_KEY" env-default:"seed/default.yaml"`
}

// Pipeline holds the auto-populate slot policy
type Pipeline struct {
	Lead    time.Duration `yaml:"lead" env:"PIPELINE_LEAD" env-default:"24h"`
	Spacing time.Duration `yaml:"spacing" env:"PIPELINE_SPACING" env-default:"24h"`
}

// Database holds database configuration
type Database struct {
	PostgresDSN string `yaml:"postgres_dsn" env:"DATABASE_URL"`

	// Connection pool settings
	MaxConns     int32         `yaml:"max_conns" env:"DB_MAX_CONNS" env-default:"5"`
	MinConns     int32         `yaml:"min_conns" env:"DB_MIN_CONNS" env-default:"1"`
	ConnLifetime time.Duration `yaml:"conn_lifetime" env:"DB_CONN_LIFETIME" env-default:"5m"`
}

// S3 holds S3/MinIO storage configuration
type S3 struct {
	Endpoint        string `yaml:"endpoint" env:"S3_ENDPOINT" env-default:"http://localhost:9000"`
	AccessKeyID     string `yaml:"access_key_id" env:"S3_ACCESS_KEY_ID" env-default:"minioadmin"`
	SecretAccessKey string `yaml:"secret_access_key" env:"S3_SECRET_ACCESS_KEY" env-default:"minioadmin"`
	Bucket          string `yaml:"bucket" env:"S3_BUCKET" env-default:"content"`
	Region          string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
}

// Validate checks cross-field constraints cleanenv cannot express
func (c Config) Validate() error {
	switch c.Seed.Source {
	case SeedSourceEmbedded:
	case SeedSourceFile:
		if c.Seed.Path == "" {
			return fmt.Errorf("SEED_PATH is required for seed source %q", c.Seed.Source)
		}
	case SeedSourcePostgres:
		if c.Database.PostgresDSN == "" {
			return fmt.Errorf("DATABASE_URL is required for seed source %q", c.Seed.Source)
		}
	case SeedSourceS3:
		if c.S3.Bucket == "" || c.Seed.S3Key == "" {
			return fmt.Errorf("S3_BUCKET and SEED_S3_KEY are required for seed source %q", c.Seed.Source)
		}
	default:
		return fmt.Errorf("unknown seed source %q", c.Seed.Source)
	}
	if c.Pipeline.Lead <= 0 {
		return fmt.Errorf("pipeline lead must be positive, got %s", c.Pipeline.Lead)
	}
	if c.Pipeline.Spacing <= 0 {
		return fmt.Errorf("pipeline spacing must be positive, got %s", c.Pipeline.Spacing)
	}
	return nil
}

// MustLoad loads configuration from environment and exits on error
func MustLoad() Config {
	// Load .env file if exists (for development)
	_ = godotenv.Load()

	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	return cfg
}

// Load reads configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
