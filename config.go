package landscape

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds the connection settings for the graph store. All values are
// read from the environment; a .env file in the working directory is loaded
// first when present.
type Config struct {
	// URI is the connection URI of the Neo4j instance, e.g. "neo4j://localhost:7687".
	URI string `env:"NEO4J_URI"`
	// Username is the authentication principal.
	Username string `env:"NEO4J_USERNAME"`
	// Password is the authentication secret.
	Password string `env:"NEO4J_PASSWORD"`
	// Database is the name of the target database within the instance.
	Database string `env:"NEO4J_DATABASE" envDefault:"neo4j"`

	// MaxPoolSize caps the number of pooled connections.
	MaxPoolSize int `env:"NEO4J_MAX_POOL_SIZE" envDefault:"100"`
	// ConnectionTimeoutSec bounds the establishment of a single connection.
	ConnectionTimeoutSec int `env:"NEO4J_CONNECTION_TIMEOUT_SEC" envDefault:"30"`
	// MaxConnectionLifetimeSec forces pooled connections to be recycled.
	MaxConnectionLifetimeSec int `env:"NEO4J_MAX_CONNECTION_LIFETIME_SEC" envDefault:"3600"`
}

// Validate checks that every required connection value is present.
func (c *Config) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("%w: NEO4J_URI is not set", ErrConfig)
	}
	if c.Username == "" {
		return fmt.Errorf("%w: NEO4J_USERNAME is not set", ErrConfig)
	}
	if c.Password == "" {
		return fmt.Errorf("%w: NEO4J_PASSWORD is not set", ErrConfig)
	}
	if c.MaxPoolSize < 1 {
		return fmt.Errorf("%w: NEO4J_MAX_POOL_SIZE must be at least 1", ErrConfig)
	}
	if c.ConnectionTimeoutSec < 1 {
		return fmt.Errorf("%w: NEO4J_CONNECTION_TIMEOUT_SEC must be at least 1", ErrConfig)
	}
	if c.MaxConnectionLifetimeSec < 1 {
		return fmt.Errorf("%w: NEO4J_MAX_CONNECTION_LIFETIME_SEC must be at least 1", ErrConfig)
	}
	return nil
}

// LoadConfig reads the store configuration from the environment.
//
// Returns:
//
//	A validated Config, or an error wrapping ErrConfig when a required value
//	is absent or out of range.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
