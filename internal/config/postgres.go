package config

import (
	"fmt"
	"strings"
)

// PostgresConfig holds the connection settings for the replica's Postgres order store
type PostgresConfig struct {
	User     string
	Password string
	Database string
	Host     string
	SSLMode  string
	// SearchPath pins the session to one schema, used by integration tests for isolation.
	SearchPath string
}

// LoadPostgresConfig loads PostgreSQL configuration from environment variables
func LoadPostgresConfig(getenv func(string) string) (*PostgresConfig, error) {
	cfg := &PostgresConfig{
		User:     getenv("POSTGRES_USER"),
		Password: getenv("POSTGRES_PASSWORD"),
		Database: getenv("POSTGRES_DB"),
		Host:     getenv("POSTGRES_HOSTNAME"),
		SSLMode:  getenv("POSTGRES_SSLMODE"),
	}

	var missing []string
	if cfg.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Database == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if cfg.Host == "" {
		missing = append(missing, "POSTGRES_HOSTNAME")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s required for the postgres order store", strings.Join(missing, ", "))
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}

	return cfg, nil
}

// ConnectionString returns a lib/pq key/value connection string
func (c *PostgresConfig) ConnectionString() string {
	conn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Database, c.SSLMode)
	if c.SearchPath != "" {
		conn += " search_path=" + c.SearchPath
	}
	return conn
}
