// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldType is the vault's custom field type discriminator.
type FieldType int

const (
	// FieldTypeText is a plain text field. Every field bwenv writes has
	// this type.
	FieldTypeText FieldType = 0

	// FieldTypeHidden is a masked text field.
	FieldTypeHidden FieldType = 1

	// FieldTypeBoolean is a checkbox field.
	FieldTypeBoolean FieldType = 2

	// FieldTypeLinked references another attribute of the item.
	FieldTypeLinked FieldType = 3
)

// Field is a single custom field of a vault item.
//
// A JSON null value (boolean and linked fields may carry one) decodes to the
// empty string.
type Field struct {
	Name  string    `json:"name"`
	Value string    `json:"value"`
	Type  FieldType `json:"type"`
}

// NewTextField returns a plain text field.
func NewTextField(name, value string) Field {
	return Field{Name: name, Value: value, Type: FieldTypeText}
}
