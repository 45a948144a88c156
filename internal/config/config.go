// Package config resolves the payadm client configuration from the
// environment and the named profiles file. Environment variables win over
// the active profile.
package config

import (
	"fmt"
	"os"
	"time"
)

const defaultServerURL = "http://localhost:8080"

type Config struct {
	ServerURL string        // PAYADM_SERVER_URL (default active profile, then http://localhost:8080)
	Token     string        // PAYADM_TOKEN (optional)
	Timeout   time.Duration // PAYADM_TIMEOUT (default 30s)
}

// Load resolves the configuration. profile, when non-empty, selects a
// named profile instead of the active one; PAYADM_PROFILE does the same.
func Load(profile string) (*Config, error) {
	c := &Config{
		ServerURL: os.Getenv("PAYADM_SERVER_URL"),
		Token:     os.Getenv("PAYADM_TOKEN"),
	}

	if profile == "" {
		profile = os.Getenv("PAYADM_PROFILE")
	}
	if c.ServerURL == "" || c.Token == "" {
		profiles, err := LoadProfiles()
		if err != nil {
			return nil, err
		}
		name := profile
		if name == "" {
			name = profiles.Active
		}
		if name != "" {
			p, ok := profiles.Profiles[name]
			if !ok {
				return nil, fmt.Errorf("unknown profile %q", name)
			}
			if c.ServerURL == "" {
				c.ServerURL = p.URL
			}
			if c.Token == "" {
				c.Token = p.Token
			}
		}
	}
	if c.ServerURL == "" {
		c.ServerURL = defaultServerURL
	}

	timeoutStr := envOrDefault("PAYADM_TIMEOUT", "30s")
	d, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("PAYADM_TIMEOUT: %w", err)
	}
	c.Timeout = d

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
