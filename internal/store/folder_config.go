// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-bwenv/internal/logger"
	"github.com/MKhiriev/go-bwenv/models"
)

// configFileMode is used when the config file is created.
const configFileMode os.FileMode = 0o644

// codec encodes the folder config in one file format.
type codec struct {
	name      string
	marshal   func(v any) ([]byte, error)
	unmarshal func(data []byte, v any) error
}

var (
	jsonCodec = codec{
		name: "json",
		marshal: func(v any) ([]byte, error) {
			data, err := json.MarshalIndent(v, "", "    ")
			if err != nil {
				return nil, err
			}
			return append(data, '\n'), nil
		},
		unmarshal: json.Unmarshal,
	}

	yamlCodec = codec{
		name:      "yaml",
		marshal:   yaml.Marshal,
		unmarshal: yaml.Unmarshal,
	}

	tomlCodec = codec{
		name: "toml",
		marshal: func(v any) ([]byte, error) {
			var buf bytes.Buffer
			if err := toml.NewEncoder(&buf).Encode(v); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
		unmarshal: func(data []byte, v any) error {
			_, err := toml.Decode(string(data), v)
			return err
		},
	}
)

// codecFor picks the codec from the file extension; anything that is not
// YAML or TOML is JSON.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec
	case ".toml":
		return tomlCodec
	default:
		return jsonCodec
	}
}

type fileFolderConfigStore struct {
	path   string
	codec  codec
	logger *logger.Logger
}

// NewFolderConfigStore returns a [FolderConfigStore] backed by the file at
// path.
func NewFolderConfigStore(path string, logger *logger.Logger) FolderConfigStore {
	return &fileFolderConfigStore{path: path, codec: codecFor(path), logger: logger}
}

func (s *fileFolderConfigStore) Path() string {
	return s.path
}

func (s *fileFolderConfigStore) Load() (models.FolderConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return models.FolderConfig{}, fmt.Errorf("%w %s: %w", ErrMissingConfig, s.path, err)
	}

	var cfg models.FolderConfig
	if err = s.codec.unmarshal(data, &cfg); err != nil {
		return models.FolderConfig{}, fmt.Errorf("%w %s: decode %s: %w", ErrMissingConfig, s.path, s.codec.name, err)
	}

	s.logger.Debug().Str("path", s.path).Str("folder_id", cfg.FolderID).Msg("loaded folder config")
	return cfg, nil
}

func (s *fileFolderConfigStore) Save(cfg models.FolderConfig) error {
	data, err := s.codec.marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w %s: encode %s: %w", ErrWritingConfig, s.path, s.codec.name, err)
	}

	if err = writeFileAtomic(s.path, data, configFileMode); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWritingConfig, s.path, err)
	}

	s.logger.Debug().Str("path", s.path).Str("folder_id", cfg.FolderID).Msg("saved folder config")
	return nil
}
