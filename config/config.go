package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Delivery DeliveryConfig `mapstructure:"delivery"`
	Inbound  InboundConfig  `mapstructure:"inbound"`
	Operator OperatorConfig `mapstructure:"operator"`
	AES      AESConfig      `mapstructure:"aes"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// DeliveryConfig tunes the outbound delivery pipeline.
type DeliveryConfig struct {
	Workers      int           `mapstructure:"workers"`       // concurrent delivery workers
	BatchSize    int           `mapstructure:"batch_size"`    // jobs leased per poll
	PollInterval time.Duration `mapstructure:"poll_interval"` // idle poll cadence
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`  // per-attempt timeout
	LeaseTimeout time.Duration `mapstructure:"lease_timeout"` // in_flight reclaim window
	MaxAttempts  int           `mapstructure:"max_attempts"`
	BaseDelay    time.Duration `mapstructure:"base_delay"`
	CapDelay     time.Duration `mapstructure:"cap_delay"`
}

// InboundConfig tunes the provider-facing ingestion endpoint.
type InboundConfig struct {
	ProviderSecret string        `mapstructure:"provider_secret"` // shared HMAC secret
	MaxDrift       time.Duration `mapstructure:"max_drift"`       // accepted timestamp skew
	DedupTTL       time.Duration `mapstructure:"dedup_ttl"`       // redis fast-path TTL
}

// OperatorConfig holds the admin token settings for dead-letter actions.
type OperatorConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTExpiry time.Duration `mapstructure:"jwt_expiry"`
	Issuer    string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: EVR (Event Relay).
// Nested keys use underscore: EVR_DATABASE_HOST, EVR_DELIVERY_MAX_ATTEMPTS, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "event_relay")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("delivery.workers", 8)
	v.SetDefault("delivery.batch_size", 20)
	v.SetDefault("delivery.poll_interval", "1s")
	v.SetDefault("delivery.http_timeout", "10s")
	v.SetDefault("delivery.lease_timeout", "2m")
	v.SetDefault("delivery.max_attempts", 8)
	v.SetDefault("delivery.base_delay", "30s")
	v.SetDefault("delivery.cap_delay", "1h")
	v.SetDefault("inbound.provider_secret", "")
	v.SetDefault("inbound.max_drift", "5m")
	v.SetDefault("inbound.dedup_ttl", "24h")
	v.SetDefault("operator.jwt_secret", "")
	v.SetDefault("operator.jwt_expiry", "12h")
	v.SetDefault("operator.issuer", "event-relay")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: EVR_DATABASE_HOST -> database.host
	v.SetEnvPrefix("EVR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
