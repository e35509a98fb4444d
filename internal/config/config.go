// Package config loads application configuration from environment
// variables. Required variables are enforced with fail-fast helpers so a
// misconfigured process never reaches the listen loop.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Repository backend selectors.
const (
	BackendMemory = "memory"
	BackendMySQL  = "mysql"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Database variables are only required when
// the MySQL backend is selected.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	RepoBackend  string // "memory" or "mysql"
	DBUser       string // database username
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name
	JWTSecret    string // secret used to sign JWTs
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing
	AMQPURL      string // message broker URL (optional, empty disables events)
}

// Load reads configuration from the environment. Missing required
// variables cause the program to exit with a fatal log message.
func Load() Config {
	cfg := Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		RepoBackend:  strings.ToLower(getenv("REPO_BACKEND", BackendMemory)),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:   mustInt("BCRYPT_COST"),
		AMQPURL:      os.Getenv("RABBITMQ_URL"),
	}
	switch cfg.RepoBackend {
	case BackendMemory:
		// no database required
	case BackendMySQL:
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	default:
		log.Fatalf("unknown REPO_BACKEND: %q (want %q or %q)", cfg.RepoBackend, BackendMemory, BackendMySQL)
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the value to an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
