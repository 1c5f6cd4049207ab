// Package config loads server configuration from the environment. A .env
// file in the working directory is honoured for local development.
package config

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds everything the server needs at startup.
type Config struct {
	Addr    string // listen address
	DataDir string // directory for the JSON content files
	Env     string // "development" or "production"

	SessionSecret     []byte // 32-byte CSRF/session auth key
	AdminPasswordHash []byte // bcrypt hash of the shared admin password

	ResendKey   string // empty disables real email delivery
	ContactTo   string // inbox for contact-form messages
	ContactFrom string // verified sender address
}

// Load reads configuration from the environment, loading .env first if
// present. Missing secrets are a startup error so a misconfigured server
// never comes up with auth silently broken.
// POST: SessionSecret is exactly 32 bytes; AdminPasswordHash is a bcrypt hash
func Load() (Config, error) {
	_ = godotenv.Load() // Loads .env file if present

	cfg := Config{
		Addr:        envOrDefault("TT_ADDR", ":8080"),
		DataDir:     envOrDefault("TT_DATA_DIR", "data"),
		Env:         envOrDefault("TT_ENV", "development"),
		ResendKey:   os.Getenv("TT_RESEND_KEY"),
		ContactTo:   envOrDefault("TT_CONTACT_TO", "hello@tapsandtakeout.example"),
		ContactFrom: envOrDefault("TT_CONTACT_FROM", "Taps & Takeout <noreply@tapsandtakeout.example>"),
	}

	secretHex := os.Getenv("TT_SESSION_SECRET")
	if secretHex == "" {
		return Config{}, fmt.Errorf("TT_SESSION_SECRET is not set (expected 64 hex chars)")
	}
	secret, err := hex.DecodeString(secretHex)
	if err != nil {
		return Config{}, fmt.Errorf("TT_SESSION_SECRET is not valid hex: %w", err)
	}
	if len(secret) != 32 {
		return Config{}, fmt.Errorf("TT_SESSION_SECRET must decode to 32 bytes, got %d", len(secret))
	}
	cfg.SessionSecret = secret

	hash, err := adminPasswordHash()
	if err != nil {
		return Config{}, err
	}
	cfg.AdminPasswordHash = hash

	return cfg, nil
}

// adminPasswordHash resolves the admin credential. A pre-computed bcrypt
// hash (TT_ADMIN_PASSWORD_HASH, from cmd/hashpassword) wins; otherwise a
// plaintext TT_ADMIN_PASSWORD is hashed at startup.
func adminPasswordHash() ([]byte, error) {
	if h := os.Getenv("TT_ADMIN_PASSWORD_HASH"); h != "" {
		if _, err := bcrypt.Cost([]byte(h)); err != nil {
			return nil, fmt.Errorf("TT_ADMIN_PASSWORD_HASH is not a bcrypt hash: %w", err)
		}
		return []byte(h), nil
	}
	if p := os.Getenv("TT_ADMIN_PASSWORD"); p != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash TT_ADMIN_PASSWORD: %w", err)
		}
		return hash, nil
	}
	return nil, fmt.Errorf("set TT_ADMIN_PASSWORD_HASH or TT_ADMIN_PASSWORD")
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
