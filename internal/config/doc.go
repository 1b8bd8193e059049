// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for duet.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - SpeakersConfig: Display names for the two conversation parties
//   - TranscriptConfig: Transcript persistence settings
//   - UIConfig: Theme and rendering preferences
//   - Watcher: Debounced live reload when the config file changes
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (DUET_*)
//   - ~/.duet/config.toml
//   - ~/.duet/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	left := cfg.Speakers.LeftName
//	max := cfg.Transcript.MaxMessages
package config
