// Manages server configuration stored in config.yaml.

package storage

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	webpush "github.com/SherClockHolmes/webpush-go"
	"gopkg.in/yaml.v3"
)

// ServerConfig stores all server-wide configuration.
// Loaded from config.yaml, created with defaults if missing.
type ServerConfig struct {
	// JWTSecret is the secret used to sign JWT tokens.
	// Auto-generated if empty on first load.
	JWTSecret []byte `yaml:"jwt_secret"`

	// VAPID holds the web push key pair. Auto-generated on first load.
	VAPID VAPIDConfig `yaml:"vapid"`

	// RateLimits defines rate limiting configuration.
	RateLimits RateLimits `yaml:"rate_limits"`

	// Quotas defines server-wide resource limits.
	Quotas ServerQuotas `yaml:"quotas"`

	// GeoDBPath is an optional MaxMind MMDB file for session country lookup.
	GeoDBPath string `yaml:"geo_db_path"`
}

// VAPIDConfig holds the web push key pair.
type VAPIDConfig struct {
	PublicKey  string `yaml:"public_key"`
	PrivateKey string `yaml:"private_key"`
}

// RateLimits defines rate limiting configuration (requests per minute).
type RateLimits struct {
	// AuthRatePerMin limits login attempts. 0 means unlimited.
	AuthRatePerMin int `yaml:"auth_rate_per_min"`

	// WriteRatePerMin limits write operations (POST/PUT/PATCH/DELETE).
	// 0 means unlimited.
	WriteRatePerMin int `yaml:"write_rate_per_min"`

	// ReadRatePerMin limits read operations. 0 means unlimited.
	ReadRatePerMin int `yaml:"read_rate_per_min"`
}

// Validate checks that rate limit values are non-negative.
func (r *RateLimits) Validate() error {
	if r.AuthRatePerMin < 0 {
		return errors.New("auth_rate_per_min must be non-negative")
	}
	if r.WriteRatePerMin < 0 {
		return errors.New("write_rate_per_min must be non-negative")
	}
	if r.ReadRatePerMin < 0 {
		return errors.New("read_rate_per_min must be non-negative")
	}
	return nil
}

// DefaultRateLimits returns the default rate limits.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		AuthRatePerMin:  5,
		WriteRatePerMin: 120,
		ReadRatePerMin:  6000,
	}
}

// ServerQuotas defines server-wide resource limits.
type ServerQuotas struct {
	// MaxRequestBodyBytes limits the size of any single HTTP request body.
	MaxRequestBodyBytes int64 `yaml:"max_request_body_bytes"`

	// MaxSessionsPerUser limits active sessions per user.
	MaxSessionsPerUser int `yaml:"max_sessions_per_user"`

	// MaxRowsPerTable limits entities per collection.
	MaxRowsPerTable int `yaml:"max_rows_per_table"`
}

// Validate checks that all quota values are non-negative.
func (q *ServerQuotas) Validate() error {
	if q.MaxRequestBodyBytes < 0 {
		return errors.New("max_request_body_bytes must be non-negative")
	}
	if q.MaxSessionsPerUser < 0 {
		return errors.New("max_sessions_per_user must be non-negative")
	}
	if q.MaxRowsPerTable < 0 {
		return errors.New("max_rows_per_table must be non-negative")
	}
	return nil
}

// DefaultServerQuotas returns the default server-wide quotas.
func DefaultServerQuotas() ServerQuotas {
	return ServerQuotas{
		MaxRequestBodyBytes: 1 * 1024 * 1024, // 1 MiB
		MaxSessionsPerUser:  10,
		MaxRowsPerTable:     100000,
	}
}

// Validate checks that the configuration is valid.
func (c *ServerConfig) Validate() error {
	if len(c.JWTSecret) == 0 {
		return errors.New("jwt_secret is required")
	}
	if len(c.JWTSecret) < 32 {
		return errors.New("jwt_secret must be at least 32 bytes")
	}
	if err := c.RateLimits.Validate(); err != nil {
		return fmt.Errorf("rate_limits: %w", err)
	}
	if err := c.Quotas.Validate(); err != nil {
		return fmt.Errorf("quotas: %w", err)
	}
	return nil
}

// LoadServerConfig loads configuration from dataDir/config.yaml.
// Creates the file with defaults if it doesn't exist. Auto-generates the JWT
// secret and the VAPID key pair if missing.
func LoadServerConfig(dataDir string) (*ServerConfig, error) {
	path := filepath.Join(dataDir, "config.yaml")

	cfg := ServerConfig{Quotas: DefaultServerQuotas(), RateLimits: DefaultRateLimits()}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is constructed from dataDir, not user input
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
		// File doesn't exist, will create with defaults
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config.yaml: %w", err)
		}
	}

	modified := false
	if len(cfg.JWTSecret) == 0 {
		cfg.JWTSecret = make([]byte, 32)
		if _, err := rand.Read(cfg.JWTSecret); err != nil {
			return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		modified = true
	}
	if cfg.VAPID.PublicKey == "" || cfg.VAPID.PrivateKey == "" {
		priv, pub, err := webpush.GenerateVAPIDKeys()
		if err != nil {
			return nil, fmt.Errorf("failed to generate VAPID keys: %w", err)
		}
		cfg.VAPID = VAPIDConfig{PublicKey: pub, PrivateKey: priv}
		modified = true
	}

	if modified || errors.Is(err, os.ErrNotExist) {
		if err := cfg.Save(dataDir); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config.yaml: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to dataDir/config.yaml.
func (c *ServerConfig) Save(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil { //nolint:gosec // G301: 0o755 is intentional for data directories
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	path := filepath.Join(dataDir, "config.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config.yaml: %w", err)
	}
	return nil
}
