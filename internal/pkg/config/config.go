package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,        default=5000"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string `env:"CORS_ORIGIN, default=https://mahndi.vercel.app"`

	AuthDB    MongoConfig
	PaymentDB PaymentMongoConfig
	Redis     RedisConfig
}

// MongoConfig points at the authentication database holding accounts.
type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=auth"`
}

// PaymentMongoConfig points at the payment database holding orders.
// The two stores are independent deployments, so each carries its own
// connection string.
type PaymentMongoConfig struct {
	URI      string `env:"PAYMENT_DB_URI, default=mongodb://localhost:27017"`
	Database string `env:"PAYMENT_DB,     default=payments"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from the environment using go-envconfig.
// A .env file is merged in first when present.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
