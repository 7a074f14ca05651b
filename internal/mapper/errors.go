// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is matched by every [*MalformedLineError].
	ErrMalformedLine = errors.New("malformed line")

	// ErrUnknownFormat is returned for an unsupported env-file dialect.
	ErrUnknownFormat = errors.New("unknown env file format")

	// ErrUnrepresentableValue is returned when a value cannot be written in
	// a dialect without changing it on the way back in.
	ErrUnrepresentableValue = errors.New("value cannot be written without loss")
)

// MalformedLineError reports an input line that has no '=' separator.
type MalformedLineError struct {
	// Line is the 1-based line number.
	Line int
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s %d: missing '='", ErrMalformedLine, e.Line)
}

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}
