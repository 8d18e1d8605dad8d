package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and an optional .env file.
func Load[T any](cfg T) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return env.Parse(cfg)
}

// Config holds the configuration for the order book service.
type Config struct {
	Pair         string               `env:"PAIR,required,notEmpty"` // Instrument, e.g. BTC-USD
	LogLevel     string               `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr     string               `env:"HTTP_ADDR" envDefault:":8080"` // Health and metrics
	KafkaConfig  `envPrefix:"KAFKA_"` // Order stream
	RedisConfig  `envPrefix:"REDIS_"` // Snapshot storage
	EngineConfig `envPrefix:"ENGINE_"` // Snapshot cadence
}

// KafkaConfig holds the configuration for the Kafka order reader.
type KafkaConfig struct {
	Topic   string   `env:"TOPIC,required"`
	GroupID string   `env:"GROUP_ID" envDefault:"default_group"`
	Brokers []string `env:"BROKER,required"`
}

// RedisConfig holds the configuration for Redis client.
type RedisConfig struct {
	Addrs    []string `env:"ADDRESS,required"` // Comma-separated list of Redis addresses
	Password string   `env:"PASSWORD" envDefault:""`
	Username string   `env:"USERNAME" envDefault:""`
	DB       int      `env:"DB" envDefault:"0"`
}

// EngineConfig controls how often the engine snapshots the book.
type EngineConfig struct {
	SnapshotInterval    time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"30s"`
	SnapshotOffsetDelta int64         `env:"SNAPSHOT_OFFSET_DELTA" envDefault:"1000"`
}
