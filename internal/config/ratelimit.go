package config

import "time"

// RateLimitConfig controls the Redis token-bucket limiter applied ahead
// of the public endpoints. Disabled (or Redis-less) configurations pass
// every request through.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int           // bucket size
	RefillTokens   int           // tokens added per interval
	RefillInterval time.Duration // refill cadence
	TTL            time.Duration // bucket key expiry
	Prefix         string        // key namespace
}

// LoadRateLimitConfig reads the limiter settings from the environment
// with permissive defaults.
func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Capacity:       atoi(getenv("RATE_LIMIT_CAPACITY", "60")),
		RefillTokens:   atoi(getenv("RATE_LIMIT_REFILL_TOKENS", "60")),
		RefillInterval: parseDur(getenv("RATE_LIMIT_REFILL_INTERVAL", "1m")),
		TTL:            parseDur(getenv("RATE_LIMIT_TTL", "10m")),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
	}
}
