// Package config loads the settings shared by every page host.
package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"sigs.k8s.io/yaml"
)

const (
	DefaultBackpackURL = "https://backpack.tf"
	DefaultSteamURL    = "http://steamcommunity.com"
)

var steamIDRe = regexp.MustCompile(`^\d{17}$`)

// Config is the on-disk configuration. Every field is optional.
type Config struct {
	// ViewerSteamID is the 17 digit steam id of the person viewing the page.
	// When empty it is read from the page header.
	ViewerSteamID string `json:"viewerSteamID,omitempty"`

	// BackpackURL and SteamURL are the origins used for generated links.
	BackpackURL string `json:"backpackURL,omitempty"`
	SteamURL    string `json:"steamURL,omitempty"`

	// Now pins the reference time used for recency tiers (RFC 3339).
	Now string `json:"now,omitempty"`

	// DateLayouts are extra time layouts tried when parsing owner dates on
	// premium search results.
	DateLayouts []string `json:"dateLayouts,omitempty"`
}

// Default returns a Config with the default link origins.
func Default() *Config {
	return &Config{
		BackpackURL: DefaultBackpackURL,
		SteamURL:    DefaultSteamURL,
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if len(path) == 0 {
		return cfg, nil
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(contents)
}

// Parse decodes YAML contents on top of the defaults and validates the result.
func Parse(contents []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(contents, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.BackpackURL = strings.TrimSuffix(cfg.BackpackURL, "/")
	cfg.SteamURL = strings.TrimSuffix(cfg.SteamURL, "/")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field formats.
func (c *Config) Validate() error {
	if c.ViewerSteamID != "" && !steamIDRe.MatchString(c.ViewerSteamID) {
		return fmt.Errorf("viewerSteamID must be 17 digits, got: %s", c.ViewerSteamID)
	}
	for name, origin := range map[string]string{"backpackURL": c.BackpackURL, "steamURL": c.SteamURL} {
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got: %s", name, origin)
		}
	}
	if c.Now != "" {
		if _, err := time.Parse(time.RFC3339, c.Now); err != nil {
			return fmt.Errorf("now must be RFC 3339: %w", err)
		}
	}
	return nil
}

// NowTime returns the pinned reference time, if any.
func (c *Config) NowTime() (time.Time, bool) {
	if c.Now == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, c.Now)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
