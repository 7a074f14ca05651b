// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-bwenv/internal/logger"
	"github.com/MKhiriev/go-bwenv/models"
)

// nonInteractive is appended to every `bw` call so that a locked vault
// fails instead of prompting.
const nonInteractive = "--nointeraction"

// CLIVaultAdapter is the `bw` subprocess implementation of [VaultAdapter]
// and [Encoder].
type CLIVaultAdapter struct {
	runner Runner
	logger *logger.Logger
}

// NewCLIVaultAdapter constructs a [CLIVaultAdapter] on top of runner.
func NewCLIVaultAdapter(runner Runner, logger *logger.Logger) *CLIVaultAdapter {
	return &CLIVaultAdapter{runner: runner, logger: logger}
}

func (a *CLIVaultAdapter) Sync(ctx context.Context) error {
	_, err := a.run(ctx, nil, "sync")
	return err
}

func (a *CLIVaultAdapter) ListFolders(ctx context.Context, search string) ([]models.Folder, error) {
	out, err := a.run(ctx, nil, "list", "folders", "--search", search)
	if err != nil {
		return nil, err
	}

	var folders []models.Folder
	if err = decode(out, &folders); err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}

func (a *CLIVaultAdapter) ListItems(ctx context.Context, folderID, search string) ([]models.Item, error) {
	out, err := a.run(ctx, nil, "list", "items", "--folderid", folderID, "--search", search)
	if err != nil {
		return nil, err
	}

	var items []models.Item
	if err = decode(out, &items); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (a *CLIVaultAdapter) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	encoded, err := a.Encode(ctx, item)
	if err != nil {
		return models.Item{}, fmt.Errorf("encode new item: %w", err)
	}

	out, err := a.run(ctx, []byte(encoded), "create", "item")
	if err != nil {
		return models.Item{}, err
	}

	var created models.Item
	if err = decode(out, &created); err != nil {
		return models.Item{}, fmt.Errorf("create item: %w", err)
	}
	return created, nil
}

func (a *CLIVaultAdapter) EditItem(ctx context.Context, item models.Item) (models.Item, error) {
	encoded, err := a.Encode(ctx, item)
	if err != nil {
		return models.Item{}, fmt.Errorf("encode item %s: %w", item.ID, err)
	}

	out, err := a.run(ctx, []byte(encoded), "edit", "item", item.ID)
	if err != nil {
		return models.Item{}, err
	}

	var edited models.Item
	if err = decode(out, &edited); err != nil {
		return models.Item{}, fmt.Errorf("edit item: %w", err)
	}
	return edited, nil
}

// Encode implements [Encoder] by piping the JSON form of v through
// `bw encode`. The output is returned untouched.
func (a *CLIVaultAdapter) Encode(ctx context.Context, v any) (string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	out, err := a.run(ctx, payload, "encode")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (a *CLIVaultAdapter) run(ctx context.Context, stdin []byte, args ...string) ([]byte, error) {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, args...)
	argv = append(argv, nonInteractive)

	return a.runner.Run(ctx, stdin, argv...)
}

// decode parses CLI JSON output. An empty body decodes to the zero value.
func decode(out []byte, v any) error {
	if len(out) == 0 {
		return nil
	}
	if err := json.Unmarshal(out, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
