// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists bwenv's local state: the folder config record
// written by `init`, and the env files read by `set` and written by `get`.
//
// Both stores are plain files owned by the working directory. Writes go
// through a temporary file renamed into place, so a failed command never
// leaves a truncated target behind.
package store

import (
	"io"

	"github.com/MKhiriev/go-bwenv/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StdStream is the file name that selects standard input or output.
const StdStream = "-"

// FolderConfigStore reads and writes the persisted [models.FolderConfig].
type FolderConfigStore interface {
	// Path returns the location of the config file.
	Path() string

	// Load reads the config file. Any failure is reported as
	// [ErrMissingConfig].
	Load() (models.FolderConfig, error)

	// Save overwrites the config file unconditionally.
	Save(cfg models.FolderConfig) error
}

// EnvFileStore opens env-file sources and writes env-file targets. The name
// [StdStream] selects standard input for Open and standard output for Write.
type EnvFileStore interface {
	// Open returns a reader for the named source. The caller closes it.
	Open(name string) (io.ReadCloser, error)

	// Write replaces the named target with data.
	Write(name string, data []byte) error
}
