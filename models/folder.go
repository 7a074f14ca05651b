// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Folder is a vault folder as returned by `bw list folders`.
type Folder struct {
	// ID is the opaque folder identifier.
	ID string `json:"id"`

	// Name is the human-readable folder name.
	Name string `json:"name"`

	// Object is the vault object discriminator ("folder").
	Object string `json:"object,omitempty"`
}
