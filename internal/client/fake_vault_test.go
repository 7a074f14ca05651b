// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bwenv/internal/adapter"
	"github.com/MKhiriev/go-bwenv/internal/config"
	"github.com/MKhiriev/go-bwenv/internal/logger"
	"github.com/MKhiriev/go-bwenv/models"
)

// fakeVault is an in-memory vault with bw's substring search semantics.
type fakeVault struct {
	folders []models.Folder
	items   []models.Item
	syncErr error

	calls     int
	factories int
	created   []models.Item
	edited    []models.Item
}

func (f *fakeVault) factory(*config.Settings, *logger.Logger) (adapter.VaultAdapter, error) {
	f.factories++
	return f, nil
}

func (f *fakeVault) Sync(context.Context) error {
	f.calls++
	return f.syncErr
}

func (f *fakeVault) ListFolders(_ context.Context, search string) ([]models.Folder, error) {
	f.calls++
	var out []models.Folder
	for _, folder := range f.folders {
		if strings.Contains(folder.Name, search) {
			out = append(out, folder)
		}
	}
	return out, nil
}

func (f *fakeVault) ListItems(_ context.Context, folderID, search string) ([]models.Item, error) {
	f.calls++
	var out []models.Item
	for _, item := range f.items {
		if item.FolderID == folderID && strings.Contains(item.Name, search) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeVault) CreateItem(_ context.Context, item models.Item) (models.Item, error) {
	f.calls++
	item.ID = fmt.Sprintf("I%d", len(f.items)+1)
	f.items = append(f.items, item)
	f.created = append(f.created, item)
	return item, nil
}

func (f *fakeVault) EditItem(_ context.Context, item models.Item) (models.Item, error) {
	f.calls++
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = item
			f.edited = append(f.edited, item)
			return item, nil
		}
	}
	return models.Item{}, adapter.ErrNotFound
}
