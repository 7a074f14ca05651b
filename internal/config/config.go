// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Backends supported by [Vault.Backend].
const (
	BackendCLI   = "cli"
	BackendServe = "serve"
)

// Item lookup modes supported by [Vault.Lookup].
const (
	LookupSearch = "search"
	LookupExact  = "exact"
)

// Settings is the top-level runtime configuration of bwenv.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Settings struct {
	// Session is the vault session token forwarded to every vault call.
	// It is only ever read from the environment and never persisted.
	Session string `env:"BW_SESSION"`

	// ConfigPath is the path of the persisted folder record.
	ConfigPath string `env:"BWENV_CONFIG"`

	// Vault holds backend selection and vault call settings.
	Vault Vault `envPrefix:"BWENV_"`

	// Log holds logger settings.
	Log Log `envPrefix:"BWENV_LOG_"`
}

// Vault configures how bwenv talks to the vault.
type Vault struct {
	// Binary is the vault CLI executable name or path.
	Binary string `env:"BW_BINARY"`

	// Backend selects the transport: "cli" runs the binary per call,
	// "serve" talks to a running `bw serve` instance.
	Backend string `env:"BACKEND"`

	// ServeURL is the base URL of `bw serve` when Backend is "serve".
	ServeURL string `env:"SERVE_URL"`

	// Lookup selects item resolution: "search" accepts the single
	// substring match, "exact" additionally requires an exact name match.
	Lookup string `env:"LOOKUP"`

	// StrictSync turns a failed vault sync into a command failure. When
	// false, sync failures are logged and ignored.
	StrictSync bool `env:"STRICT_SYNC"`

	// Timeout bounds every single vault call.
	Timeout time.Duration `env:"TIMEOUT"`
}

// Log configures the process logger.
type Log struct {
	// Level is a zerolog level name.
	Level string `env:"LEVEL"`

	// Format is "auto", "console" or "json".
	Format string `env:"FORMAT"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		ConfigPath: "bwenv.json",
		Vault: Vault{
			Binary:   "bw",
			Backend:  BackendCLI,
			ServeURL: "http://localhost:8087",
			Lookup:   LookupSearch,
			Timeout:  60 * time.Second,
		},
		Log: Log{
			Level:  "info",
			Format: "auto",
		},
	}
}

// GetSettings builds and validates the settings from defaults, the given
// environment and the parsed flag values.
//
// environ maps variable names to values; pass env.ToMap(os.Environ()) for the
// process environment. flags may be nil.
func GetSettings(environ map[string]string, flags *Flags) (*Settings, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv(environ).
		withFlags(flags).
		build()
}

// GetLogSettings resolves only the logger settings. It skips validation so
// the logger can be built before a missing session is reported; sources that
// fail to parse are ignored in favour of the defaults.
func GetLogSettings(environ map[string]string, flags *Flags) Log {
	merged, err := newConfigBuilder().
		withDefaults().
		withEnv(environ).
		withFlags(flags).
		merge()
	if err != nil {
		return Defaults().Log
	}
	return merged.Log
}
