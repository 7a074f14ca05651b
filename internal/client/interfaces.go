// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-bwenv/internal/adapter"
	"github.com/MKhiriev/go-bwenv/internal/config"
	"github.com/MKhiriev/go-bwenv/internal/logger"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes one invocation with the given command-line arguments
	// (without the program name) and blocks until it finishes.
	Run(ctx context.Context, args []string) error
}

// AdapterFactory builds the vault transport from resolved settings.
type AdapterFactory func(settings *config.Settings, logger *logger.Logger) (adapter.VaultAdapter, error)

// IDGenerator produces the run identifier attached to every log line.
type IDGenerator interface {
	Generate() string
}
