// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrMissingSession indicates that BW_SESSION is unset or empty.
	ErrMissingSession = errors.New("no BW_SESSION")

	// ErrInvalidSettings indicates settings that fail validation (for
	// example, an unknown backend or a negative timeout).
	ErrInvalidSettings = errors.New("invalid settings")
)
