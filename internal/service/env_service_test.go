// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bwenv/internal/logger"
	"github.com/MKhiriev/go-bwenv/internal/mapper"
	"github.com/MKhiriev/go-bwenv/internal/mock"
	"github.com/MKhiriev/go-bwenv/internal/store"
	"github.com/MKhiriev/go-bwenv/models"
)

type envServiceMocks struct {
	vault    *mock.MockVaultClient
	config   *mock.MockFolderConfigStore
	envFiles *mock.MockEnvFileStore
}

// newTestEnvService creates an envService with mocked collaborators.
func newTestEnvService(t *testing.T) (EnvService, envServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := envServiceMocks{
		vault:    mock.NewMockVaultClient(ctrl),
		config:   mock.NewMockFolderConfigStore(ctrl),
		envFiles: mock.NewMockEnvFileStore(ctrl),
	}
	return NewEnvService(m.vault, m.config, m.envFiles, logger.Nop()), m
}

// ── Init ────────────────────────────────────────────────────────────────────

func TestEnvService_Init(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	m.vault.EXPECT().FindFolder(ctx, "work").Return(models.Folder{ID: "F1", Name: "work"}, nil)
	m.config.EXPECT().Save(models.FolderConfig{FolderID: "F1"}).Return(nil)
	m.config.EXPECT().Path().Return("bwenv.json").AnyTimes()

	cfg, err := svc.Init(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, "F1", cfg.FolderID)
}

func TestEnvService_Init_FolderNotUnique(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	m.vault.EXPECT().FindFolder(ctx, "work").Return(models.Folder{}, &ResultCountError{Kind: "folder", Name: "work", Count: 2})

	_, err := svc.Init(ctx, "work")
	assert.ErrorIs(t, err, ErrAmbiguousResult)
}

func TestEnvService_Init_SaveFails(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	m.vault.EXPECT().FindFolder(ctx, "work").Return(models.Folder{ID: "F1"}, nil)
	m.config.EXPECT().Save(gomock.Any()).Return(store.ErrWritingConfig)

	_, err := svc.Init(ctx, "work")
	assert.ErrorIs(t, err, store.ErrWritingConfig)
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestEnvService_Get_WritesLines(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	m.vault.EXPECT().ReadFields(ctx, "db").Return(models.MappingOf("A", "1", "B", "2"), nil)
	m.envFiles.EXPECT().Write(store.StdStream, []byte("A=1\nB=2\n")).Return(nil)

	require.NoError(t, svc.Get(ctx, models.GetRequest{Item: "db"}))
}

func TestEnvService_Get_SyncsFirst(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	gomock.InOrder(
		m.vault.EXPECT().Sync(ctx).Return(nil),
		m.vault.EXPECT().ReadFields(ctx, "db").Return(models.MappingOf("A", "1"), nil),
		m.envFiles.EXPECT().Write(".env", []byte("A=1\n")).Return(nil),
	)

	require.NoError(t, svc.Get(ctx, models.GetRequest{Item: "db", Output: ".env", Sync: true}))
}

func TestEnvService_Get_StrictSyncFailureStops(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	m.vault.EXPECT().Sync(ctx).Return(ErrSyncFailed)

	err := svc.Get(ctx, models.GetRequest{Item: "db", Sync: true})
	assert.ErrorIs(t, err, ErrSyncFailed)
}

func TestEnvService_Get_Dotenv(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	m.vault.EXPECT().ReadFields(ctx, "db").Return(models.MappingOf("A", "x y"), nil)
	m.envFiles.EXPECT().Write(store.StdStream, []byte("A=\"x y\"\n")).Return(nil)

	require.NoError(t, svc.Get(ctx, models.GetRequest{Item: "db", Format: "dotenv"}))
}

func TestEnvService_Get_MissingItemWritesNothing(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	m.vault.EXPECT().ReadFields(ctx, "missing").Return(nil, &ResultCountError{Kind: "item", Name: "missing"})

	err := svc.Get(ctx, models.GetRequest{Item: "missing", Output: ".env"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnvService_Get_UnknownFormat(t *testing.T) {
	svc, _ := newTestEnvService(t)

	err := svc.Get(context.Background(), models.GetRequest{Item: "db", Format: "yaml"})
	assert.ErrorIs(t, err, mapper.ErrUnknownFormat)
}

// ── Set ─────────────────────────────────────────────────────────────────────

func TestEnvService_Set_ParsesAndWrites(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	m.envFiles.EXPECT().Open(store.StdStream).Return(io.NopCloser(strings.NewReader("A=1\nB=x=y\n")), nil)
	m.vault.EXPECT().WriteFields(ctx, "db", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields *models.Mapping) error {
			assert.Equal(t, []string{"A", "B"}, fields.Keys())
			assert.Equal(t, map[string]string{"A": "1", "B": "x=y"}, fields.ToMap())
			return nil
		})

	require.NoError(t, svc.Set(ctx, models.SetRequest{Item: "db"}))
}

func TestEnvService_Set_SyncsAfterwards(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	gomock.InOrder(
		m.envFiles.EXPECT().Open(".env").Return(io.NopCloser(strings.NewReader("A=1\n")), nil),
		m.vault.EXPECT().WriteFields(ctx, "db", gomock.Any()).Return(nil),
		m.vault.EXPECT().Sync(ctx).Return(nil),
	)

	require.NoError(t, svc.Set(ctx, models.SetRequest{Item: "db", Input: ".env", Sync: true}))
}

func TestEnvService_Set_MalformedLine(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	m.envFiles.EXPECT().Open(store.StdStream).Return(io.NopCloser(strings.NewReader("A=1\nbroken\n")), nil)

	err := svc.Set(ctx, models.SetRequest{Item: "db"})
	require.Error(t, err)
	assert.ErrorIs(t, err, mapper.ErrMalformedLine)

	var lineErr *mapper.MalformedLineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line)
}

func TestEnvService_Set_OpenFails(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	m.envFiles.EXPECT().Open("absent").Return(nil, store.ErrOpeningEnvFile)

	err := svc.Set(ctx, models.SetRequest{Item: "db", Input: "absent"})
	assert.ErrorIs(t, err, store.ErrOpeningEnvFile)
}

func TestEnvService_Set_WriteFailsSkipsSync(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	m.envFiles.EXPECT().Open(store.StdStream).Return(io.NopCloser(strings.NewReader("A=1\n")), nil)
	m.vault.EXPECT().WriteFields(ctx, "db", gomock.Any()).Return(errors.New("boom"))

	err := svc.Set(ctx, models.SetRequest{Item: "db", Sync: true})
	assert.EqualError(t, err, "boom")
}

// ── Sync ────────────────────────────────────────────────────────────────────

func TestEnvService_Sync(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestEnvService(t)

	m.vault.EXPECT().Sync(ctx).Return(nil)

	require.NoError(t, svc.Sync(ctx))
}
