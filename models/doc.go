// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the vault domain types shared by every layer of
// bwenv: folders, items and their custom fields as the vault CLI reports
// them, the ordered key/value [Mapping] projected from an item, and the
// persisted [FolderConfig] record.
package models
