// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bwenv/internal/adapter"
	"github.com/MKhiriev/go-bwenv/internal/logger"
	"github.com/MKhiriev/go-bwenv/internal/mock"
	"github.com/MKhiriev/go-bwenv/internal/validators"
	"github.com/MKhiriev/go-bwenv/models"
)

const testFolderID = "F1"

// newTestVaultClient creates a vaultClient backed by a mock adapter.
func newTestVaultClient(t *testing.T, opts VaultOptions) (VaultClient, *mock.MockVaultAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockVaultAdapter(ctrl)
	if opts.FolderID == "" {
		opts.FolderID = testFolderID
	}
	return NewVaultClient(mockAdapter, opts, logger.Nop()), mockAdapter
}

func testItem(id, name string, kv ...string) models.Item {
	fields := make([]models.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		fields = append(fields, models.NewTextField(kv[i], kv[i+1]))
	}
	return models.Item{ID: id, Name: name, FolderID: testFolderID, Type: models.ItemTypeSecureNote, Fields: fields}
}

var errTransport = &adapter.CommandError{Args: []string{"bw", "list"}, ExitCode: 1, Stderr: "Not logged in."}

// ── Sync ────────────────────────────────────────────────────────────────────

func TestVaultClient_Sync(t *testing.T) {
	c, a := newTestVaultClient(t, VaultOptions{})
	ctx := context.Background()

	a.EXPECT().Sync(ctx).Return(nil)

	require.NoError(t, c.Sync(ctx))
}

func TestVaultClient_Sync_FailureIsLoggedByDefault(t *testing.T) {
	c, a := newTestVaultClient(t, VaultOptions{})
	ctx := context.Background()

	a.EXPECT().Sync(ctx).Return(errTransport)

	assert.NoError(t, c.Sync(ctx))
}

func TestVaultClient_Sync_StrictReturnsFailure(t *testing.T) {
	c, a := newTestVaultClient(t, VaultOptions{StrictSync: true})
	ctx := context.Background()

	a.EXPECT().Sync(ctx).Return(errTransport)

	err := c.Sync(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncFailed)
	assert.ErrorIs(t, err, adapter.ErrSubprocessFailure)
}

// ── FindFolder ──────────────────────────────────────────────────────────────

func TestVaultClient_FindFolder(t *testing.T) {
	ctx := context.Background()

	t.Run("exactly one", func(t *testing.T) {
		c, a := newTestVaultClient(t, VaultOptions{})
		a.EXPECT().ListFolders(ctx, "work").Return([]models.Folder{{ID: "F9", Name: "work"}}, nil)

		folder, err := c.FindFolder(ctx, "work")
		require.NoError(t, err)
		assert.Equal(t, "F9", folder.ID)
	})

	t.Run("zero matches", func(t *testing.T) {
		c, a := newTestVaultClient(t, VaultOptions{})
		a.EXPECT().ListFolders(ctx, "work").Return(nil, nil)

		_, err := c.FindFolder(ctx, "work")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAmbiguousResult)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("two matches", func(t *testing.T) {
		c, a := newTestVaultClient(t, VaultOptions{})
		a.EXPECT().ListFolders(ctx, "work").Return([]models.Folder{{ID: "F1"}, {ID: "F2"}}, nil)

		_, err := c.FindFolder(ctx, "work")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAmbiguousResult)
		assert.NotErrorIs(t, err, ErrNotFound)

		var countErr *ResultCountError
		require.True(t, errors.As(err, &countErr))
		assert.Equal(t, 2, countErr.Count)
		assert.Equal(t, "folder", countErr.Kind)
	})

	t.Run("transport failure", func(t *testing.T) {
		c, a := newTestVaultClient(t, VaultOptions{})
		a.EXPECT().ListFolders(ctx, "work").Return(nil, errTransport)

		_, err := c.FindFolder(ctx, "work")
		assert.ErrorIs(t, err, adapter.ErrSubprocessFailure)
	})
}

// ── FindItem / GetItem ──────────────────────────────────────────────────────

func TestVaultClient_FindItem(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		items    []models.Item
		wantID   string
		wantErr  error
		notFound bool
	}{
		{name: "one", items: []models.Item{testItem("I1", "db")}, wantID: "I1"},
		{name: "substring match counts", items: []models.Item{testItem("I2", "db-prod")}, wantID: "I2"},
		{name: "zero", items: nil, wantErr: ErrAmbiguousResult, notFound: true},
		{name: "two", items: []models.Item{testItem("I1", "db"), testItem("I2", "db-prod")}, wantErr: ErrAmbiguousResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, a := newTestVaultClient(t, VaultOptions{})
			a.EXPECT().ListItems(ctx, testFolderID, "db").Return(tt.items, nil)

			got, err := c.FindItem(ctx, "db")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.notFound {
					assert.ErrorIs(t, err, ErrNotFound)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestVaultClient_GetItem_ExactName(t *testing.T) {
	ctx := context.Background()

	c, a := newTestVaultClient(t, VaultOptions{})
	a.EXPECT().ListItems(ctx, testFolderID, "db").
		Return([]models.Item{testItem("I1", "db"), testItem("I2", "db-prod")}, nil)

	got, err := c.GetItem(ctx, "db")
	require.NoError(t, err)
	assert.Equal(t, "I1", got.ID)
}

func TestVaultClient_GetItem_NoExactMatch(t *testing.T) {
	ctx := context.Background()

	c, a := newTestVaultClient(t, VaultOptions{})
	a.EXPECT().ListItems(ctx, testFolderID, "db").Return([]models.Item{testItem("I2", "db-prod")}, nil)

	_, err := c.GetItem(ctx, "db")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVaultClient_FindItem_ExactLookup(t *testing.T) {
	ctx := context.Background()

	c, a := newTestVaultClient(t, VaultOptions{ExactLookup: true})
	a.EXPECT().ListItems(ctx, testFolderID, "db").
		Return([]models.Item{testItem("I1", "db"), testItem("I2", "db-prod")}, nil)

	got, err := c.FindItem(ctx, "db")
	require.NoError(t, err)
	assert.Equal(t, "I1", got.ID)
}

func TestVaultClient_FindItem_NoFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := NewVaultClient(mock.NewMockVaultAdapter(ctrl), VaultOptions{}, logger.Nop())

	_, err := c.FindItem(context.Background(), "db")
	assert.ErrorIs(t, err, ErrFolderNotConfigured)
}

// ── ReadFields ──────────────────────────────────────────────────────────────

func TestVaultClient_ReadFields(t *testing.T) {
	ctx := context.Background()

	c, a := newTestVaultClient(t, VaultOptions{})
	a.EXPECT().ListItems(ctx, testFolderID, "db").
		Return([]models.Item{testItem("I1", "db", "A", "1", "B", "2", "A", "3")}, nil)

	m, err := c.ReadFields(ctx, "db")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, m.Keys())
	assert.Equal(t, map[string]string{"A": "3", "B": "2"}, m.ToMap())
}

func TestVaultClient_ReadFields_NotFound(t *testing.T) {
	ctx := context.Background()

	c, a := newTestVaultClient(t, VaultOptions{})
	a.EXPECT().ListItems(ctx, testFolderID, "db").Return([]models.Item{}, nil)

	m, err := c.ReadFields(ctx, "db")
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── ItemExists ──────────────────────────────────────────────────────────────

func TestVaultClient_ItemExists(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		items []models.Item
		err   error
		want  bool
	}{
		{name: "exactly one", items: []models.Item{testItem("I1", "db")}, want: true},
		{name: "not found", items: nil, want: false},
		{name: "ambiguous", items: []models.Item{testItem("I1", "db"), testItem("I2", "db2")}, want: false},
		{name: "transport failure", err: errTransport, want: false},
		{name: "serve not found", err: adapter.ErrNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, a := newTestVaultClient(t, VaultOptions{})
			a.EXPECT().ListItems(ctx, testFolderID, "db").Return(tt.items, tt.err)

			assert.Equal(t, tt.want, c.ItemExists(ctx, "db"))
		})
	}
}

// ── WriteFields ─────────────────────────────────────────────────────────────

func TestVaultClient_WriteFields_CreatesWhenMissing(t *testing.T) {
	ctx := context.Background()

	c, a := newTestVaultClient(t, VaultOptions{})
	a.EXPECT().ListItems(ctx, testFolderID, "db").Return(nil, nil)
	a.EXPECT().CreateItem(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, created models.Item) (models.Item, error) {
			raw, err := json.Marshal(created)
			require.NoError(t, err)
			assert.JSONEq(t, `{
				"object": "item",
				"folderId": "F1",
				"type": 2,
				"name": "db",
				"secureNote": {"type": 0},
				"fields": [
					{"name": "A", "value": "1", "type": 0},
					{"name": "B", "value": "2", "type": 0}
				]
			}`, string(raw))
			created.ID = "NEW"
			return created, nil
		})

	require.NoError(t, c.WriteFields(ctx, "db", models.MappingOf("A", "1", "B", "2")))
}

func TestVaultClient_WriteFields_ReplacesFieldsWhenPresent(t *testing.T) {
	ctx := context.Background()

	var existing models.Item
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "I1", "object": "item", "folderId": "F1", "type": 2, "name": "db",
		"notes": "keep me", "secureNote": {"type": 0},
		"fields": [{"name": "OLD", "value": "x", "type": 1}, {"name": "A", "value": "0", "type": 0}]
	}`), &existing))

	c, a := newTestVaultClient(t, VaultOptions{})
	a.EXPECT().ListItems(ctx, testFolderID, "db").Return([]models.Item{existing}, nil).Times(2)
	a.EXPECT().EditItem(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, edited models.Item) (models.Item, error) {
			assert.Equal(t, "I1", edited.ID)
			assert.Equal(t, []models.Field{models.NewTextField("A", "1")}, edited.Fields)

			raw, err := json.Marshal(edited)
			require.NoError(t, err)
			assert.Contains(t, string(raw), `"notes":"keep me"`)
			assert.NotContains(t, string(raw), "OLD")
			return edited, nil
		})

	require.NoError(t, c.WriteFields(ctx, "db", models.MappingOf("A", "1")))
}

func TestVaultClient_WriteFields_AmbiguousCreates(t *testing.T) {
	ctx := context.Background()

	c, a := newTestVaultClient(t, VaultOptions{})
	a.EXPECT().ListItems(ctx, testFolderID, "db").Return([]models.Item{testItem("I1", "db"), testItem("I2", "db-2")}, nil)
	a.EXPECT().CreateItem(ctx, gomock.Any()).Return(models.Item{ID: "NEW"}, nil)

	require.NoError(t, c.WriteFields(ctx, "db", models.MappingOf("A", "1")))
}

func TestVaultClient_WriteFields_CreateFails(t *testing.T) {
	ctx := context.Background()

	c, a := newTestVaultClient(t, VaultOptions{})
	a.EXPECT().ListItems(ctx, testFolderID, "db").Return(nil, nil)
	a.EXPECT().CreateItem(ctx, gomock.Any()).Return(models.Item{}, errTransport)

	err := c.WriteFields(ctx, "db", models.MappingOf("A", "1"))
	assert.ErrorIs(t, err, adapter.ErrSubprocessFailure)
}

func TestVaultClient_WriteFields_EditFails(t *testing.T) {
	ctx := context.Background()

	c, a := newTestVaultClient(t, VaultOptions{})
	a.EXPECT().ListItems(ctx, testFolderID, "db").Return([]models.Item{testItem("I1", "db")}, nil).Times(2)
	a.EXPECT().EditItem(ctx, gomock.Any()).Return(models.Item{}, adapter.ErrBadRequest)

	err := c.WriteFields(ctx, "db", models.MappingOf("A", "1"))
	assert.ErrorIs(t, err, ErrVaultRejected)
}

func TestVaultClient_WriteFields_InvalidInputMakesNoCalls(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestVaultClient(t, VaultOptions{})

	err := c.WriteFields(ctx, "", models.MappingOf("A", "1"))
	assert.ErrorIs(t, err, validators.ErrInvalidItemName)

	err = c.WriteFields(ctx, "db", models.MappingOf("", "1"))
	assert.ErrorIs(t, err, validators.ErrInvalidFieldName)
}

// ── Encode ──────────────────────────────────────────────────────────────────

type encodingAdapter struct {
	*mock.MockVaultAdapter
	*mock.MockEncoder
}

func TestVaultClient_Encode(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	enc := mock.NewMockEncoder(ctrl)
	a := encodingAdapter{MockVaultAdapter: mock.NewMockVaultAdapter(ctrl), MockEncoder: enc}

	enc.EXPECT().Encode(ctx, "payload").Return("ENC", nil)

	c := NewVaultClient(a, VaultOptions{FolderID: testFolderID}, logger.Nop())
	out, err := c.Encode(ctx, "payload")
	require.NoError(t, err)
	assert.Equal(t, "ENC", out)
}

func TestVaultClient_Encode_Unsupported(t *testing.T) {
	c, _ := newTestVaultClient(t, VaultOptions{})

	_, err := c.Encode(context.Background(), "payload")
	assert.ErrorIs(t, err, ErrEncodeUnsupported)
}
