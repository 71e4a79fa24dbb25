// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/b64u16/models"

// EnvPrefix is prepended to every environment variable read by the tool.
const EnvPrefix = "B64U16_"

// DefaultLogLevel is used when neither B64U16_LOG_LEVEL nor --log-level is set.
const DefaultLogLevel = "warn"

// StructuredConfig is the top-level configuration container for b64u16.
// It is populated by merging defaults, environment variables and
// command-line flags, in that order (later set values win; an explicitly
// given boolean wins even when it is false).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Request holds the raw --encode/--decode values. They are never read
	// from the environment.
	Request Request

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Copy makes the tool also place the result on the system clipboard.
	// nil means unset. Env: B64U16_COPY
	Copy *bool `env:"COPY"`

	// TUI switches the interactive prompts to the terminal UI when stdin is
	// a terminal. nil means unset.
	// Env: B64U16_TUI
	TUI *bool `env:"TUI"`
}

// Request holds the strings given on the command line.
type Request struct {
	// Encode is the value of -e/--encode.
	Encode string

	// Decode is the value of -d/--decode.
	Decode string
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "warn", "disabled").
	// Env: B64U16_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File, when set, receives JSON log lines instead of stderr.
	// Env: B64U16_LOG_FILE
	File string `env:"FILE"`
}

// CopyEnabled reports whether results should also go to the clipboard.
func (cfg *StructuredConfig) CopyEnabled() bool {
	return cfg.Copy != nil && *cfg.Copy
}

// TUIEnabled reports whether interactive prompts should use the terminal UI.
func (cfg *StructuredConfig) TUIEnabled() bool {
	return cfg.TUI != nil && *cfg.TUI
}

// ToRequest converts the raw flag values into the request the run executes.
func (cfg *StructuredConfig) ToRequest() models.Request {
	return models.NewRequest(cfg.Request.Encode, cfg.Request.Decode)
}

// GetStructuredConfig loads, merges, and validates the configuration.
// flags is the config bound to the command's flag set with [BindFlags]; it
// must be passed after the flag set has been parsed.
//
// Priority order (last source wins for set fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		build()
}
