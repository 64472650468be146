// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/arena-tui/internal/model"
	"github.com/jeranaias/arena-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete arena configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Identity used for outgoing messages
	Identity IdentityConfig `toml:"identity" json:"identity"`

	// Static data source
	Seed SeedConfig `toml:"seed" json:"seed"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Debug logging
	Log LogConfig `toml:"log" json:"log"`
}

// IdentityConfig describes the local user.
type IdentityConfig struct {
	// Name is the sender name for broadcast and direct messages
	Name string `toml:"name" json:"name"`
	// Avatar is an opaque avatar reference
	Avatar string `toml:"avatar" json:"avatar"`
}

// SeedConfig controls where seed data is read from.
type SeedConfig struct {
	// Path to a TOML or YAML seed file; empty uses the built-in seed
	Path string `toml:"path" json:"path"`
	// Watch reloads the log corpus when the seed file changes
	Watch bool `toml:"watch" json:"watch"`
}

// UIConfig contains UI preferences.
type UIConfig struct {
	// Theme is "dark" or "light"
	Theme string `toml:"theme" json:"theme"`
	// StartScreen is "login", "dashboard" or "chat"
	StartScreen string `toml:"start_screen" json:"start_screen"`
	// ToastSeconds is how long informational toasts stay up
	ToastSeconds int `toml:"toast_seconds" json:"toast_seconds"`
	// AltScreen runs the TUI in the alternate screen buffer
	AltScreen bool `toml:"alt_screen" json:"alt_screen"`
}

// LogConfig contains debug logging configuration.
type LogConfig struct {
	// File receives debug logs while the TUI is running; empty discards them
	File string `toml:"file" json:"file"`
}

// Valid option values.
var (
	validThemes       = []string{"dark", "light"}
	validStartScreens = []string{"login", "dashboard", "chat"}
)

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Identity: IdentityConfig{
			Name:   model.SelfName,
			Avatar: model.DefaultAvatar,
		},
		Seed: SeedConfig{
			Path:  "",
			Watch: true,
		},
		UI: UIConfig{
			Theme:        "dark",
			StartScreen:  "login",
			ToastSeconds: 4,
			AltScreen:    true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the arena configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".arena"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last. A file that fails to decode is
// reported alongside the defaults so the caller can warn and continue.
func Load() (*Config, error) {
	var loadErr error

	if tomlPath, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			cfg := Default()
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	if jsonPath, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			cfg := Default()
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finish(cfg)
			}
		}
	}

	cfg, err := finish(Default())
	if err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// finish applies env overrides, defaults and validation.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SetDefaults fills any zero values with defaults and normalizes case.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	c.Identity.Name = strings.TrimSpace(c.Identity.Name)
	if c.Identity.Name == "" {
		c.Identity.Name = defaults.Identity.Name
	}
	if c.Identity.Avatar == "" {
		c.Identity.Avatar = defaults.Identity.Avatar
	}

	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	c.UI.StartScreen = strings.ToLower(strings.TrimSpace(c.UI.StartScreen))
	if c.UI.StartScreen == "" {
		c.UI.StartScreen = defaults.UI.StartScreen
	}
	if c.UI.ToastSeconds == 0 {
		c.UI.ToastSeconds = defaults.UI.ToastSeconds
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration as TOML with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# arena configuration file\n")
	buf.WriteString("# Generated by arena - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON writes the configuration as indented JSON with 0600 permissions.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if !contains(validThemes, strings.ToLower(c.UI.Theme)) {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: %s", c.UI.Theme, strings.Join(validThemes, ", ")),
		})
	}

	if !contains(validStartScreens, strings.ToLower(c.UI.StartScreen)) {
		errs = append(errs, ValidationError{
			Field:   "ui.start_screen",
			Message: fmt.Sprintf("invalid start screen '%s', must be one of: %s", c.UI.StartScreen, strings.Join(validStartScreens, ", ")),
		})
	}

	if c.UI.ToastSeconds < 1 || c.UI.ToastSeconds > 60 {
		errs = append(errs, ValidationError{
			Field:   "ui.toast_seconds",
			Message: fmt.Sprintf("must be between 1 and 60, got %d", c.UI.ToastSeconds),
		})
	}

	if strings.ContainsAny(c.Identity.Name, "\n\r\t") {
		errs = append(errs, ValidationError{
			Field:   "identity.name",
			Message: "must not contain control whitespace",
		})
	}

	if c.Seed.Path != "" {
		if _, err := os.Stat(c.Seed.Path); err != nil {
			errs = append(errs, ValidationError{
				Field:   "seed.path",
				Message: fmt.Sprintf("cannot read seed file: %v", err),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides.
//
// Supported environment variables:
//   - ARENA_IDENTITY: overrides identity.name
//   - ARENA_SEED: overrides seed.path
//   - ARENA_SEED_WATCH: "1"/"true" or "0"/"false"
//   - ARENA_THEME: overrides ui.theme
//   - ARENA_START_SCREEN: overrides ui.start_screen
//   - ARENA_LOG_FILE: overrides log.file
func (c *Config) ApplyEnvOverrides() {
	if name := os.Getenv("ARENA_IDENTITY"); name != "" {
		c.Identity.Name = name
	}
	if path := os.Getenv("ARENA_SEED"); path != "" {
		c.Seed.Path = path
	}
	if watch := os.Getenv("ARENA_SEED_WATCH"); watch != "" {
		if b, err := strconv.ParseBool(watch); err == nil {
			c.Seed.Watch = b
		}
	}
	if theme := os.Getenv("ARENA_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if screen := os.Getenv("ARENA_START_SCREEN"); screen != "" {
		c.UI.StartScreen = screen
	}
	if file := os.Getenv("ARENA_LOG_FILE"); file != "" {
		c.Log.File = file
	}
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config encode error: %v>", err)
	}
	return buf.String()
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
