// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the file stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrMissingConfig is returned when the folder config file does not
	// exist, cannot be read or cannot be decoded.
	ErrMissingConfig = errors.New("missing config file")

	// ErrWritingConfig is returned when the folder config file cannot be
	// encoded or written.
	ErrWritingConfig = errors.New("error writing config file")

	// ErrOpeningEnvFile is returned when an env input file cannot be opened.
	ErrOpeningEnvFile = errors.New("error opening env file")

	// ErrWritingEnvFile is returned when an env output target cannot be
	// written.
	ErrWritingEnvFile = errors.New("error writing env file")
)
