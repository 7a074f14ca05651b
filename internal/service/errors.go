// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousResult is matched by every [*ResultCountError].
	ErrAmbiguousResult = errors.New("invalid search should be unique")

	// ErrNotFound is matched by a [*ResultCountError] with zero matches and
	// by vault lookups that report a missing object.
	ErrNotFound = errors.New("not found")

	ErrFolderNotConfigured = errors.New("folder is not configured")
	ErrEncodeUnsupported   = errors.New("backend has no encode step")
	ErrSyncFailed          = errors.New("vault sync failed")
	ErrVaultRejected       = errors.New("vault rejected the request")
)

// ResultCountError reports a search that did not resolve to exactly one
// object.
type ResultCountError struct {
	// Kind is "folder" or "item".
	Kind string
	// Name is the searched name.
	Name string
	// Count is the number of matches.
	Count int
}

func (e *ResultCountError) Error() string {
	return fmt.Sprintf("%s %d: %s %q", ErrAmbiguousResult, e.Count, e.Kind, e.Name)
}

func (e *ResultCountError) Is(target error) bool {
	switch target {
	case ErrAmbiguousResult:
		return true
	case ErrNotFound:
		return e.Count == 0
	default:
		return false
	}
}
