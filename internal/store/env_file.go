// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"io"
	"os"
)

// envFileMode is used when an env file is created; env files hold secrets.
const envFileMode os.FileMode = 0o600

type envFileStore struct {
	stdin  io.Reader
	stdout io.Writer
}

// NewEnvFileStore returns an [EnvFileStore] that maps [StdStream] to stdin
// and stdout.
func NewEnvFileStore(stdin io.Reader, stdout io.Writer) EnvFileStore {
	return &envFileStore{stdin: stdin, stdout: stdout}
}

func (s *envFileStore) Open(name string) (io.ReadCloser, error) {
	if name == StdStream {
		return io.NopCloser(s.stdin), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpeningEnvFile, name, err)
	}
	return f, nil
}

func (s *envFileStore) Write(name string, data []byte) error {
	if name == StdStream {
		if _, err := s.stdout.Write(data); err != nil {
			return fmt.Errorf("%w stdout: %w", ErrWritingEnvFile, err)
		}
		return nil
	}

	if err := writeFileAtomic(name, data, envFileMode); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWritingEnvFile, name, err)
	}
	return nil
}
