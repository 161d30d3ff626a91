package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	JWTSecret       string        `env:"JWT_SECRET,       required"`
	TokenTTL        time.Duration `env:"TOKEN_TTL,        default=24h"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	StoreBackend    string        `env:"STORE_BACKEND,    default=mongo"`
	AuditWorkers    int           `env:"AUDIT_WORKERS,    default=4"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI          string `env:"MONGO_URI,          default=mongodb://localhost:27017"`
	Database     string `env:"MONGO_DB,           default=voting"`
	Transactions bool   `env:"MONGO_TRANSACTIONS, default=true"`
}

type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB          int           `env:"REDIS_DB,      default=0"`
	VoteLockTTL time.Duration `env:"VOTE_LOCK_TTL, default=10s"`
}

// IsDevelopment reports whether human-friendly output should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	switch cfg.StoreBackend {
	case BackendMongo, BackendMemory:
	default:
		return nil, fmt.Errorf("config: STORE_BACKEND must be %q or %q, got %q", BackendMongo, BackendMemory, cfg.StoreBackend)
	}
	return &cfg, nil
}
