// Defines rate limit tiers and routing rules.

package ratelimit

import (
	"time"
)

// Scope defines how rate limit keys are determined.
type Scope int

const (
	// ScopeIP uses client IP address as the rate limit key.
	ScopeIP Scope = iota
	// ScopeUser uses authenticated user ID as the rate limit key.
	ScopeUser
)

// Tier defines a rate limit tier with its limiter and scope.
type Tier struct {
	Name    string
	Limiter *Limiter
	Scope   Scope
}

// Config holds rate limiters for different tiers.
type Config struct {
	Auth  Tier
	Write Tier
	Read  Tier
}

// NewConfig creates rate limiters from per-minute budgets. A zero budget
// disables the tier.
//   - Auth: login attempts, IP scope
//   - Write: POST/PUT/PATCH/DELETE, user scope
//   - Read: GET, user scope when authenticated, IP otherwise
func NewConfig(authPerMin, writePerMin, readPerMin int) *Config {
	c := &Config{}
	if authPerMin > 0 {
		c.Auth = Tier{
			Name:    "auth",
			Limiter: NewLimiter(authPerMin, time.Minute, authPerMin),
			Scope:   ScopeIP,
		}
	}
	if writePerMin > 0 {
		c.Write = Tier{
			Name:    "write",
			Limiter: NewLimiter(writePerMin, time.Minute, max(writePerMin/6, 1)),
			Scope:   ScopeUser,
		}
	}
	if readPerMin > 0 {
		c.Read = Tier{
			Name:    "read",
			Limiter: NewLimiter(readPerMin, time.Minute, max(readPerMin/6, 1)),
			Scope:   ScopeUser,
		}
	}
	return c
}

// MatchUnauth returns the tier for unauthenticated requests.
// Returns nil for paths that should not be rate limited.
func (c *Config) MatchUnauth(method, path string) *Tier {
	// Skip health check and metrics scrapes
	if path == "/api/health" || path == "/metrics" {
		return nil
	}
	if method == "POST" && path == "/api/auth/login" {
		return tierOrNil(&c.Auth)
	}
	if method == "GET" {
		return tierOrNil(&c.Read)
	}
	return nil
}

// MatchAuth returns the tier for authenticated requests.
// Returns nil for paths that should not be rate limited.
func (c *Config) MatchAuth(method, path string) *Tier {
	if path == "/api/health" || path == "/metrics" {
		return nil
	}
	switch method {
	case "POST", "PUT", "PATCH", "DELETE":
		return tierOrNil(&c.Write)
	case "GET":
		return tierOrNil(&c.Read)
	}
	return nil
}

// tierOrNil returns nil for tiers that were never configured.
func tierOrNil(t *Tier) *Tier {
	if t.Limiter == nil {
		return nil
	}
	return t
}

// Close stops all limiter cleanup goroutines.
func (c *Config) Close() {
	for _, t := range []*Tier{&c.Auth, &c.Write, &c.Read} {
		if t.Limiter != nil {
			t.Limiter.Close()
		}
	}
}
