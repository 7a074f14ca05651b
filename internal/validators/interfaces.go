// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks item names, field mappings and the folder
// record before bwenv sends anything to the vault or trusts a config file.
//
// Values are never inspected: they are secrets and may legitimately hold
// any bytes, including newlines in the dotenv dialect.
package validators

import "context"

// Validator checks one value. Which rules apply is decided by the dynamic
// type of the value; unsupported types fail with [ErrUnsupportedType].
type Validator interface {
	// Validate checks obj. For struct values, fields limits the check to
	// the named fields; with no names every field is checked.
	Validate(ctx context.Context, obj any, fields ...string) error
}
