// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidItemName     = errors.New("invalid item name")
	ErrInvalidFieldName    = errors.New("invalid field name")
	ErrInvalidFolderConfig = errors.New("invalid folder config")
)
