// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-bwenv/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of an item.
	FieldName = "name"

	// FieldFolderID targets the folder an item belongs to, or the id stored
	// in the folder config.
	FieldFolderID = "folder_id"

	// FieldFields targets the field list of an item or the keys of a mapping.
	FieldFields = "fields"
)

// singleLine matches strings without line breaks. An env file stores one
// entry per line.
var singleLine = regexp.MustCompile(`^[^\r\n]*$`)

var (
	itemNameRules = []validation.Rule{
		validation.Required,
		validation.By(notBlank),
		validation.Match(singleLine),
	}

	fieldNameRules = []validation.Rule{
		validation.Required,
		validation.Match(singleLine),
		validation.By(noSeparator),
	}

	folderIDRules = []validation.Rule{
		validation.Required,
		validation.By(notBlank),
	}
)

// VaultValidator checks items, mappings and folder configs before they are
// sent to the vault or persisted.
type VaultValidator struct {
}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateItemName(value)

	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	case *models.Mapping:
		return v.validateMapping(value)

	case models.FolderConfig:
		return v.validateFolderConfig(value)
	case *models.FolderConfig:
		return v.validateFolderConfig(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateItem(_ context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldFolderID, FieldFields}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if err := v.validateItemName(item.Name); err != nil {
				return err
			}
		case FieldFolderID:
			if err := validation.Validate(item.FolderID, folderIDRules...); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidFolderConfig, err)
			}
		case FieldFields:
			for _, f := range item.Fields {
				if err := validateField(f.Name, f.Value); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *VaultValidator) validateItemName(name string) error {
	if err := validation.Validate(name, itemNameRules...); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidItemName, name, err)
	}
	return nil
}

func (v *VaultValidator) validateMapping(m *models.Mapping) error {
	var err error
	m.Each(func(key, value string) {
		if err == nil {
			err = validateField(key, value)
		}
	})
	return err
}

func (v *VaultValidator) validateFolderConfig(cfg models.FolderConfig) error {
	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.FolderID, folderIDRules...),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFolderConfig, err)
	}
	return nil
}

// validateField checks the name only. Values are opaque secrets and may
// span lines in the dotenv dialect.
func validateField(name, _ string) error {
	if err := validation.Validate(name, fieldNameRules...); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidFieldName, name, err)
	}
	return nil
}

func notBlank(value any) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "must not be blank")
	}
	return nil
}

func noSeparator(value any) error {
	s, _ := value.(string)
	if strings.Contains(s, "=") {
		return validation.NewError("validation_no_separator", "must not contain '='")
	}
	return nil
}
