// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements bwenv's business logic on top of the vault
// transport.
//
// [VaultClient] turns raw adapter calls into name-keyed operations on the
// configured folder, enforcing that every search resolves to exactly one
// object. [EnvService] orchestrates the user-facing verbs by combining the
// vault client with the field mapper and the file stores.
package service

import (
	"context"

	"github.com/MKhiriev/go-bwenv/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultClient exposes typed vault operations keyed by human-readable names.
type VaultClient interface {
	// Sync triggers a remote vault sync. Whether a failure is returned or
	// only logged depends on the strict-sync setting.
	Sync(ctx context.Context) error

	// FindFolder resolves a folder by name substring. Anything other than
	// exactly one match fails with [ErrAmbiguousResult].
	FindFolder(ctx context.Context, name string) (models.Folder, error)

	// FindItem resolves an item in the configured folder by name substring,
	// or by exact name when exact lookup is enabled.
	FindItem(ctx context.Context, name string) (models.Item, error)

	// GetItem resolves an item in the configured folder by exact name.
	GetItem(ctx context.Context, name string) (models.Item, error)

	// ReadFields projects the fields of the named item into a mapping.
	ReadFields(ctx context.Context, name string) (*models.Mapping, error)

	// ItemExists reports whether exactly one item matches name. Every
	// failure yields false.
	ItemExists(ctx context.Context, name string) bool

	// WriteFields replaces the field list of the named item, creating a
	// secure note in the configured folder when no item matches.
	WriteFields(ctx context.Context, name string, fields *models.Mapping) error

	// Encode converts v into the vault's mutation payload encoding.
	Encode(ctx context.Context, v any) (string, error)
}

// EnvService implements the init, get, set and sync verbs.
type EnvService interface {
	// Init resolves folderName and persists its id, overwriting any
	// existing folder config.
	Init(ctx context.Context, folderName string) (models.FolderConfig, error)

	// Get reads an item's fields and writes them as an env file.
	Get(ctx context.Context, req models.GetRequest) error

	// Set reads an env file and writes it as the item's field list.
	Set(ctx context.Context, req models.SetRequest) error

	// Sync triggers a vault sync.
	Sync(ctx context.Context) error
}
