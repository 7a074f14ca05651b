// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/go-bwenv/internal/app"
	"github.com/MKhiriev/go-bwenv/internal/logger"
	"github.com/MKhiriev/go-bwenv/internal/mapper"
	"github.com/MKhiriev/go-bwenv/internal/store"
	"github.com/MKhiriev/go-bwenv/internal/validators"
	"github.com/MKhiriev/go-bwenv/models"
)

type envService struct {
	vault       VaultClient
	configStore store.FolderConfigStore
	envFiles    store.EnvFileStore
	validator   validators.Validator

	logger *logger.Logger
}

// NewEnvService wires the verbs to a vault client and the local stores.
func NewEnvService(vault VaultClient, configStore store.FolderConfigStore, envFiles store.EnvFileStore, logger *logger.Logger) EnvService {
	return &envService{
		vault:       vault,
		configStore: configStore,
		envFiles:    envFiles,
		validator:   validators.NewVaultValidator(),
		logger:      logger,
	}
}

func (s *envService) Init(ctx context.Context, folderName string) (models.FolderConfig, error) {
	folder, err := s.vault.FindFolder(ctx, folderName)
	if err != nil {
		return models.FolderConfig{}, err
	}

	cfg := models.FolderConfig{FolderID: folder.ID}
	if err = s.validator.Validate(ctx, cfg); err != nil {
		return models.FolderConfig{}, err
	}

	if err = s.configStore.Save(cfg); err != nil {
		return models.FolderConfig{}, err
	}

	s.logger.Info().
		Str("folder", folderName).
		Str("folder_id", cfg.FolderID).
		Str("config", s.configStore.Path()).
		Msgf(app.MsgInitializedf, folderName)
	return cfg, nil
}

func (s *envService) Get(ctx context.Context, req models.GetRequest) error {
	format, err := mapper.ParseFormat(req.Format)
	if err != nil {
		return err
	}

	if req.Sync {
		if err = s.vault.Sync(ctx); err != nil {
			return err
		}
	}

	fields, err := s.vault.ReadFields(ctx, req.Item)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = mapper.Write(&buf, fields, format); err != nil {
		return fmt.Errorf("format %s: %w", req.Item, err)
	}

	if err = s.envFiles.Write(streamName(req.Output), buf.Bytes()); err != nil {
		return err
	}

	s.logger.Info().Str("item", req.Item).Int("fields", fields.Len()).Msgf(app.MsgLoadedf, req.Item)
	return nil
}

func (s *envService) Set(ctx context.Context, req models.SetRequest) error {
	format, err := mapper.ParseFormat(req.Format)
	if err != nil {
		return err
	}

	src, err := s.envFiles.Open(streamName(req.Input))
	if err != nil {
		return err
	}
	defer src.Close()

	fields, err := mapper.Parse(src, format)
	if err != nil {
		return fmt.Errorf("read %s: %w", streamName(req.Input), err)
	}

	if err = s.vault.WriteFields(ctx, req.Item, fields); err != nil {
		return err
	}

	if req.Sync {
		return s.vault.Sync(ctx)
	}
	return nil
}

func (s *envService) Sync(ctx context.Context) error {
	return s.vault.Sync(ctx)
}

func streamName(name string) string {
	if name == "" {
		return store.StdStream
	}
	return name
}
