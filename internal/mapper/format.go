// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-bwenv/models"
)

// Format names an env-file dialect.
type Format string

const (
	FormatRaw    Format = "raw"
	FormatDotenv Format = "dotenv"
)

// ParseFormat resolves a user-supplied dialect name; empty means raw.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatRaw:
		return FormatRaw, nil
	case FormatDotenv:
		return FormatDotenv, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Parse reads r in the given dialect.
func Parse(r io.Reader, format Format) (*models.Mapping, error) {
	switch format {
	case FormatRaw, "":
		return ParseLines(r)
	case FormatDotenv:
		return parseDotenv(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Write writes m to w in the given dialect.
func Write(w io.Writer, m *models.Mapping, format Format) error {
	switch format {
	case FormatRaw, "":
		return FormatLines(w, m)
	case FormatDotenv:
		return formatDotenv(w, m)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// parseDotenv decodes dotenv syntax. godotenv yields an unordered map, so
// keys are sorted to keep the resulting field order stable.
func parseDotenv(r io.Reader) (*models.Mapping, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse dotenv: %w", err)
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	m := models.NewMapping()
	for _, key := range keys {
		m.Set(key, values[key])
	}
	return m, nil
}

// formatDotenv writes one line per key in mapping order. Each value gets
// the first spelling godotenv reads back byte for byte: double quotes as
// godotenv.Marshal writes them, single quotes (taken literally, preferred
// when the value holds '"'), or no quotes at all. A value none of these
// preserves fails with ErrUnrepresentableValue naming only the key.
func formatDotenv(w io.Writer, m *models.Mapping) error {
	var (
		b   strings.Builder
		err error
	)
	m.Each(func(key, value string) {
		if err != nil {
			return
		}
		var line string
		if line, err = dotenvLine(key, value); err == nil {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	})
	if err != nil {
		return err
	}

	if _, err = io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write dotenv: %w", err)
	}
	return nil
}

func dotenvLine(key, value string) (string, error) {
	quoted, err := godotenv.Marshal(map[string]string{key: value})
	if err != nil {
		return "", fmt.Errorf("marshal dotenv: %w", err)
	}

	candidates := []string{quoted}
	if !strings.Contains(value, "'") {
		literal := key + "='" + value + "'"
		if strings.Contains(value, `"`) {
			candidates = []string{literal, quoted}
		} else {
			candidates = append(candidates, literal)
		}
	}
	candidates = append(candidates, key+"="+value)

	for _, line := range candidates {
		if readsBack(line, key, value) {
			return line, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnrepresentableValue, key)
}

func readsBack(line, key, value string) bool {
	parsed, err := godotenv.Unmarshal(line)
	if err != nil || len(parsed) != 1 {
		return false
	}
	got, ok := parsed[key]
	return ok && got == value
}
