// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-bwenv/models"
)

// ParseLines reads KEY=VALUE records. Each line is split on its first '=';
// the line terminator ("\n" or "\r\n") is stripped from the value and
// nothing else is trimmed. A line without '=' (a blank line included) fails
// with a [*MalformedLineError]. Lines have no length limit.
func ParseLines(r io.Reader) (*models.Mapping, error) {
	m := models.NewMapping()
	br := bufio.NewReader(r)

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read env lines: %w", err)
		}
		if line == "" {
			break
		}

		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &MalformedLineError{Line: lineNo}
		}
		m.Set(key, value)

		if err != nil {
			break
		}
	}

	return m, nil
}

// FormatLines writes "key=value\n" for every pair in mapping order.
func FormatLines(w io.Writer, m *models.Mapping) error {
	bw := bufio.NewWriter(w)

	var err error
	m.Each(func(key, value string) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(bw, "%s=%s\n", key, value)
	})
	if err != nil {
		return fmt.Errorf("write env lines: %w", err)
	}

	if err = bw.Flush(); err != nil {
		return fmt.Errorf("flush env lines: %w", err)
	}
	return nil
}
