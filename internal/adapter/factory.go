// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/go-bwenv/internal/config"
	"github.com/MKhiriev/go-bwenv/internal/logger"
)

// NewVaultAdapter builds the [VaultAdapter] selected by settings.
func NewVaultAdapter(settings *config.Settings, logger *logger.Logger) (VaultAdapter, error) {
	vault := settings.Vault

	switch vault.Backend {
	case config.BackendServe:
		return NewServeVaultAdapter(vault.ServeURL, vault.Timeout, logger)
	default:
		runner := NewExecRunner(vault.Binary, settings.Session, vault.Timeout, logger)
		return NewCLIVaultAdapter(runner, logger), nil
	}
}
