// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides loading, merging and validation of bwenv's runtime
// settings.
//
// Settings are assembled from the following sources, later sources
// overriding non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. Environment variables (BW_SESSION, BWENV_*)
//  3. Command-line flags
//
// The persisted folder record (bwenv.json) is not a setting; it is owned by
// the store package.
package config
