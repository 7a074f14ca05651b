// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mapper converts between a vault item's field list, the ordered
// [models.Mapping] projection of it, and env-file text.
//
// Two text dialects are supported:
//   - [FormatRaw]: one KEY=VALUE per line, no quoting, the value is
//     everything after the first '=';
//   - [FormatDotenv]: dotenv syntax with quoting, comments and "export"
//     prefixes, handled by github.com/joho/godotenv.
package mapper
