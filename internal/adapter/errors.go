// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSubprocessFailure is matched by every [*CommandError].
	ErrSubprocessFailure = errors.New("bw command failed")

	// ErrMalformedResponse is returned when vault output cannot be decoded.
	ErrMalformedResponse = errors.New("malformed vault response")

	ErrBadRequest    = errors.New("bad request")
	ErrNotFound      = errors.New("not found")
	ErrServerFailure = errors.New("vault server failure")
)

// CommandError describes a failed `bw` invocation.
type CommandError struct {
	// Args is the full argv. It never contains the session token.
	Args []string
	// ExitCode is the process exit status, or -1 when the process did not
	// run to completion.
	ExitCode int
	// Stderr is the trimmed standard error output.
	Stderr string
	// Err is the underlying cause, if any.
	Err error
}

func (e *CommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", ErrSubprocessFailure, strings.Join(e.Args, " "))
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, ": exit code %d", e.ExitCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Stderr != "" {
		fmt.Fprintf(&b, ": %s", e.Stderr)
	}
	return b.String()
}

func (e *CommandError) Is(target error) bool {
	return target == ErrSubprocessFailure
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
