// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bwenv/internal/adapter"
	"github.com/MKhiriev/go-bwenv/internal/app"
	"github.com/MKhiriev/go-bwenv/internal/logger"
	"github.com/MKhiriev/go-bwenv/internal/mapper"
	"github.com/MKhiriev/go-bwenv/internal/validators"
	"github.com/MKhiriev/go-bwenv/models"
)

// Lookup reasons logged when ItemExists answers false.
const (
	reasonNotFound  = "not_found"
	reasonAmbiguous = "ambiguous"
	reasonTransport = "transport"
)

// VaultOptions tunes a [VaultClient].
type VaultOptions struct {
	// FolderID pins item lookups and creations. Empty is allowed only for
	// folder operations.
	FolderID string

	// ExactLookup makes FindItem require an exact name match.
	ExactLookup bool

	// StrictSync returns sync failures instead of logging them.
	StrictSync bool
}

type vaultClient struct {
	adapter   adapter.VaultAdapter
	validator validators.Validator
	opts      VaultOptions

	logger *logger.Logger
}

// NewVaultClient constructs a [VaultClient] on top of vaultAdapter.
func NewVaultClient(vaultAdapter adapter.VaultAdapter, opts VaultOptions, logger *logger.Logger) VaultClient {
	return &vaultClient{
		adapter:   vaultAdapter,
		validator: validators.NewVaultValidator(),
		opts:      opts,
		logger:    logger,
	}
}

func (c *vaultClient) Sync(ctx context.Context) error {
	if err := c.adapter.Sync(ctx); err != nil {
		err = mapAdapterError(err)
		if c.opts.StrictSync {
			return fmt.Errorf("%w: %w", ErrSyncFailed, err)
		}
		c.logger.Warn().Err(err).Msg(app.MsgSyncFailed)
		return nil
	}

	c.logger.Info().Msg(app.MsgSynced)
	return nil
}

func (c *vaultClient) FindFolder(ctx context.Context, name string) (models.Folder, error) {
	folders, err := c.adapter.ListFolders(ctx, name)
	if err != nil {
		return models.Folder{}, fmt.Errorf("list folders %q: %w", name, mapAdapterError(err))
	}

	if len(folders) != 1 {
		return models.Folder{}, &ResultCountError{Kind: "folder", Name: name, Count: len(folders)}
	}

	c.logger.Debug().Str("folder", name).Str("folder_id", folders[0].ID).Msg("folder resolved")
	return folders[0], nil
}

func (c *vaultClient) FindItem(ctx context.Context, name string) (models.Item, error) {
	if c.opts.ExactLookup {
		return c.GetItem(ctx, name)
	}

	items, err := c.listItems(ctx, name)
	if err != nil {
		return models.Item{}, err
	}

	return single(name, items)
}

func (c *vaultClient) GetItem(ctx context.Context, name string) (models.Item, error) {
	items, err := c.listItems(ctx, name)
	if err != nil {
		return models.Item{}, err
	}

	exact := items[:0:0]
	for _, item := range items {
		if item.Name == name {
			exact = append(exact, item)
		}
	}

	return single(name, exact)
}

func (c *vaultClient) ReadFields(ctx context.Context, name string) (*models.Mapping, error) {
	item, err := c.FindItem(ctx, name)
	if err != nil {
		return nil, err
	}

	if dups := mapper.DuplicateNames(item.Fields); len(dups) > 0 {
		c.logger.Warn().
			Str("item", name).
			Strs("fields", dups).
			Msg(app.MsgDuplicateFields)
	}

	return mapper.ToMapping(item.Fields), nil
}

func (c *vaultClient) ItemExists(ctx context.Context, name string) bool {
	_, err := c.FindItem(ctx, name)
	if err == nil {
		return true
	}

	reason := reasonTransport
	switch {
	case errors.Is(err, ErrNotFound):
		reason = reasonNotFound
	case errors.Is(err, ErrAmbiguousResult):
		reason = reasonAmbiguous
	}

	c.logger.Debug().Str("item", name).Str("reason", reason).Err(err).Msg("item lookup failed")
	return false
}

func (c *vaultClient) WriteFields(ctx context.Context, name string, fields *models.Mapping) error {
	if err := c.validator.Validate(ctx, name); err != nil {
		return err
	}
	if err := c.validator.Validate(ctx, fields); err != nil {
		return err
	}

	list := mapper.ToFieldList(fields)

	if c.ItemExists(ctx, name) {
		item, err := c.FindItem(ctx, name)
		if err != nil {
			return err
		}

		if _, err = c.adapter.EditItem(ctx, item.WithFields(list)); err != nil {
			return fmt.Errorf("edit item %q: %w", name, mapAdapterError(err))
		}

		c.logger.Info().Str("item", name).Int("fields", len(list)).Msgf(app.MsgUpdatedf, name)
		return nil
	}

	item := models.NewSecureNote(name, c.opts.FolderID, list)
	if err := c.validator.Validate(ctx, item, validators.FieldFolderID); err != nil {
		return fmt.Errorf("%w: %w", ErrFolderNotConfigured, err)
	}

	if _, err := c.adapter.CreateItem(ctx, item); err != nil {
		return fmt.Errorf("create item %q: %w", name, mapAdapterError(err))
	}

	c.logger.Info().Str("item", name).Int("fields", len(list)).Msgf(app.MsgCreatedf, name)
	return nil
}

func (c *vaultClient) Encode(ctx context.Context, v any) (string, error) {
	enc, ok := c.adapter.(adapter.Encoder)
	if !ok {
		return "", ErrEncodeUnsupported
	}

	out, err := enc.Encode(ctx, v)
	if err != nil {
		return "", fmt.Errorf("encode: %w", mapAdapterError(err))
	}
	return out, nil
}

func (c *vaultClient) listItems(ctx context.Context, name string) ([]models.Item, error) {
	if c.opts.FolderID == "" {
		return nil, ErrFolderNotConfigured
	}

	items, err := c.adapter.ListItems(ctx, c.opts.FolderID, name)
	if err != nil {
		return nil, fmt.Errorf("list items %q: %w", name, mapAdapterError(err))
	}
	return items, nil
}

func single(name string, items []models.Item) (models.Item, error) {
	if len(items) != 1 {
		return models.Item{}, &ResultCountError{Kind: "item", Name: name, Count: len(items)}
	}
	return items[0], nil
}
