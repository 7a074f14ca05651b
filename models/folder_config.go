// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FolderConfig is the record persisted by `bwenv init` and read by every
// other command. It pins all item lookups and creations to one folder.
type FolderConfig struct {
	FolderID string `json:"folder_id" yaml:"folder_id" toml:"folder_id"`
}
