// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for duet.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.duet/config.toml
//   - ~/.duet/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/duet-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete duet configuration.
type Config struct {
	// Version of the config schema, for future migrations.
	Version string `toml:"version" json:"version"`

	// Speakers configuration
	Speakers SpeakersConfig `toml:"speakers" json:"speakers"`

	// Transcript storage configuration
	Transcript TranscriptConfig `toml:"transcript" json:"transcript"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// SpeakersConfig names the two parties of a conversation.
type SpeakersConfig struct {
	// LeftName is the display name of the left-hand speaker.
	LeftName string `toml:"left_name" json:"left_name"`
	// RightName is the display name of the right-hand speaker.
	RightName string `toml:"right_name" json:"right_name"`
}

// TranscriptConfig contains transcript persistence configuration.
type TranscriptConfig struct {
	// Dir is the directory transcripts are saved to (empty = ~/.duet/transcripts).
	Dir string `toml:"dir" json:"dir"`
	// MaxMessages caps how many messages a transcript retains in memory.
	// Oldest messages are pruned past this limit. 0 means the default.
	MaxMessages int `toml:"max_messages" json:"max_messages"`
	// AutoSave saves the transcript on every appended message when true.
	AutoSave bool `toml:"auto_save" json:"auto_save"`
}

// UIConfig contains UI preferences.
type UIConfig struct {
	// Theme selects the color theme: "dark", "light", or "auto".
	Theme string `toml:"theme" json:"theme"`
	// ShowTimestamps renders a timestamp next to each message when true.
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
	// ASCIIBorders forces plain ASCII borders for terminals without
	// good Unicode support.
	ASCIIBorders bool `toml:"ascii_borders" json:"ascii_borders"`
	// PreviewLength is the rune count used for transcript previews in lists.
	PreviewLength int `toml:"preview_length" json:"preview_length"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		Version: "1",
		Speakers: SpeakersConfig{
			LeftName:  "Left",
			RightName: "Right",
		},
		Transcript: TranscriptConfig{
			Dir:         "",
			MaxMessages: 1000,
			AutoSave:    false,
		},
		UI: UIConfig{
			Theme:          "auto",
			ShowTimestamps: false,
			ASCIIBorders:   false,
			PreviewLength:  60,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the duet configuration directory (~/.duet).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".duet"), nil
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

// TranscriptDir returns the directory transcripts are stored in,
// honoring the configured override.
func (c *Config) TranscriptDir() (string, error) {
	if c.Transcript.Dir != "" {
		return c.Transcript.Dir, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "transcripts"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finish(cfg)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finish(cfg)
		}
	}

	return finish(cfg)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		// Default to TOML
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// finish applies env overrides, fills defaults, and validates.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	fillDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
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

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.Speakers.LeftName == "" {
		cfg.Speakers.LeftName = defaults.Speakers.LeftName
	}
	if cfg.Speakers.RightName == "" {
		cfg.Speakers.RightName = defaults.Speakers.RightName
	}
	if cfg.Transcript.MaxMessages == 0 {
		cfg.Transcript.MaxMessages = defaults.Transcript.MaxMessages
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.PreviewLength == 0 {
		cfg.UI.PreviewLength = defaults.UI.PreviewLength
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies DUET_* environment variables over the loaded
// configuration. Environment always wins over file values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("DUET_LEFT_NAME"); v != "" {
		c.Speakers.LeftName = v
	}
	if v := os.Getenv("DUET_RIGHT_NAME"); v != "" {
		c.Speakers.RightName = v
	}
	if v := os.Getenv("DUET_TRANSCRIPT_DIR"); v != "" {
		c.Transcript.Dir = v
	}
	if v := os.Getenv("DUET_MAX_MESSAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Transcript.MaxMessages = n
		}
	}
	if v := os.Getenv("DUET_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("DUET_ASCII_BORDERS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UI.ASCIIBorders = b
		}
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

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# duet configuration file\n")
	sb.WriteString("# Generated by duet - edit with care\n")
	sb.WriteString("\n")

	encoder := toml.NewEncoder(&sb)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	if err := util.AtomicWriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
func SaveJSON(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
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
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if c.Transcript.MaxMessages < 0 {
		errs = append(errs, ValidationError{
			Field:   "transcript.max_messages",
			Message: fmt.Sprintf("cannot be negative, got %d", c.Transcript.MaxMessages),
		})
	}

	if c.UI.PreviewLength < 0 {
		errs = append(errs, ValidationError{
			Field:   "ui.preview_length",
			Message: fmt.Sprintf("cannot be negative, got %d", c.UI.PreviewLength),
		})
	}

	if c.Speakers.LeftName == c.Speakers.RightName {
		errs = append(errs, ValidationError{
			Field:   "speakers",
			Message: fmt.Sprintf("left_name and right_name must differ, both are '%s'", c.Speakers.LeftName),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
