package config

import (
	"strings"
	"time"
)

// CacheConfig controls the response cache middleware on public listing
// endpoints. Caching is a no-op when Enabled is false or no Redis client
// is available.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool // HTTP methods worth caching (GET, HEAD)
	TTL          time.Duration
	Prefix       string // key namespace
	MaxBodyBytes int    // larger responses are served but not stored
}

// LoadCacheConfig reads the cache settings from the environment with
// conservative defaults.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		Methods:      parseMethods(getenv("CACHE_METHODS", "GET")),
		TTL:          parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
	}
}

func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p != "" {
			m[p] = true
		}
	}
	return m
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
