// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GetRequest describes one `bwenv get` invocation.
type GetRequest struct {
	// Item is the vault item name.
	Item string
	// Output is the target file; "-" or empty means standard output.
	Output string
	// Sync pulls the vault before reading.
	Sync bool
	// Format is the env-file dialect: "raw" (default) or "dotenv".
	Format string
}

// SetRequest describes one `bwenv set` invocation.
type SetRequest struct {
	// Item is the vault item name.
	Item string
	// Input is the source file; "-" or empty means standard input.
	Input string
	// Sync pushes the vault after writing.
	Sync bool
	// Format is the env-file dialect: "raw" (default) or "dotenv".
	Format string
}
