// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-bwenv/internal/adapter"
	"github.com/MKhiriev/go-bwenv/internal/logger"
	"github.com/MKhiriev/go-bwenv/internal/store"
)

// Services aggregates the service layer of one bwenv invocation.
type Services struct {
	Vault VaultClient
	Env   EnvService
}

func NewServices(vaultAdapter adapter.VaultAdapter, opts VaultOptions, configStore store.FolderConfigStore, envFiles store.EnvFileStore, logger *logger.Logger) *Services {
	vault := NewVaultClient(vaultAdapter, opts, logger)

	return &Services{
		Vault: vault,
		Env:   NewEnvService(vault, configStore, envFiles, logger),
	}
}
