// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to a
// Bitwarden vault.
//
// The primary abstraction is [VaultAdapter], which decouples the service layer
// from the underlying protocol. Two implementations ship: the default one
// runs the `bw` CLI once per call ([NewCLIVaultAdapter]), the other talks to
// a local `bw serve` REST API ([NewServeVaultAdapter]).
//
// Transport failures are reported with the sentinel values defined in
// errors.go so callers can use [errors.Is] regardless of the backend
// (e.g. [ErrSubprocessFailure] for a non-zero `bw` exit, [ErrNotFound] for a
// 404 from `bw serve`).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bwenv/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_adapter_mock.go -package=mock

// VaultAdapter defines transport-agnostic raw operations on the vault.
// Implementations build argument lists or URLs, attach the session and
// decode responses. They never interpret result counts.
type VaultAdapter interface {
	// Sync pulls the latest vault state from the server.
	Sync(ctx context.Context) error

	// ListFolders returns every folder whose name contains search.
	ListFolders(ctx context.Context, search string) ([]models.Folder, error)

	// ListItems returns every item in folderID whose name contains search.
	ListItems(ctx context.Context, folderID, search string) ([]models.Item, error)

	// CreateItem stores a new item and returns it as persisted by the vault.
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	// EditItem replaces the item identified by item.ID and returns the
	// persisted result.
	EditItem(ctx context.Context, item models.Item) (models.Item, error)
}

// Encoder is implemented by adapters whose write path needs the vault's own
// payload encoding.
type Encoder interface {
	// Encode JSON-marshals v and returns the vault's encoded form verbatim.
	Encode(ctx context.Context, v any) (string, error)
}

// Runner executes one invocation of the vault CLI.
type Runner interface {
	// Run starts the binary with args, feeds stdin (may be nil) and returns
	// the captured stdout. A non-zero exit is reported as a [*CommandError].
	Run(ctx context.Context, stdin []byte, args ...string) ([]byte, error)
}
