// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import "github.com/MKhiriev/go-bwenv/models"

// ToMapping projects fields to name -> value. The last occurrence of a
// duplicate name wins.
func ToMapping(fields []models.Field) *models.Mapping {
	m := models.NewMapping()
	for _, field := range fields {
		m.Set(field.Name, field.Value)
	}
	return m
}

// ToFieldList returns one plain text field per key, in mapping order.
func ToFieldList(m *models.Mapping) []models.Field {
	fields := make([]models.Field, 0, m.Len())
	m.Each(func(key, value string) {
		fields = append(fields, models.NewTextField(key, value))
	})
	return fields
}

// DuplicateNames returns the names that occur more than once in fields, in
// order of their second occurrence.
func DuplicateNames(fields []models.Field) []string {
	seen := make(map[string]int, len(fields))
	var dups []string
	for _, field := range fields {
		seen[field.Name]++
		if seen[field.Name] == 2 {
			dups = append(dups, field.Name)
		}
	}
	return dups
}
