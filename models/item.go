// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// ItemType is the vault's item type discriminator.
type ItemType int

const (
	ItemTypeLogin      ItemType = 1
	ItemTypeSecureNote ItemType = 2
	ItemTypeCard       ItemType = 3
	ItemTypeIdentity   ItemType = 4
)

// ObjectItem is the "object" discriminator the vault CLI expects on item
// payloads.
const ObjectItem = "item"

// SecureNote holds the secure-note specific attributes of an item.
type SecureNote struct {
	Type int `json:"type"`
}

// Item is a vault item. Only the attributes bwenv reads or writes are
// modelled; every other attribute the vault returns (login, notes,
// collectionIds, revisionDate, ...) is kept as raw JSON and written back
// unchanged, so a field rewrite never loses item data.
type Item struct {
	ID         string      `json:"id,omitempty"`
	Object     string      `json:"object,omitempty"`
	FolderID   string      `json:"folderId,omitempty"`
	Type       ItemType    `json:"type"`
	Name       string      `json:"name"`
	Fields     []Field     `json:"fields"`
	SecureNote *SecureNote `json:"secureNote,omitempty"`

	extra map[string]json.RawMessage
}

// NewSecureNote builds the payload for a new secure-note item in folderID.
func NewSecureNote(name, folderID string, fields []Field) Item {
	return Item{
		Object:     ObjectItem,
		FolderID:   folderID,
		Type:       ItemTypeSecureNote,
		Name:       name,
		Fields:     fields,
		SecureNote: &SecureNote{Type: 0},
	}
}

// WithFields returns a copy of the item whose field list is replaced by
// fields. Preserved raw attributes are shared with the receiver.
func (i Item) WithFields(fields []Field) Item {
	i.Fields = fields
	return i
}

// UnmarshalJSON decodes the modelled attributes and keeps the whole object
// for re-encoding.
func (i *Item) UnmarshalJSON(b []byte) error {
	type plain Item
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("decode item: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode item attributes: %w", err)
	}

	*i = Item(p)
	i.extra = raw
	return nil
}

// MarshalJSON encodes the modelled attributes on top of the attributes
// captured by UnmarshalJSON.
func (i Item) MarshalJSON() ([]byte, error) {
	type plain Item
	known, err := json.Marshal(plain(i))
	if err != nil {
		return nil, err
	}
	if len(i.extra) == 0 {
		return known, nil
	}

	var merged map[string]json.RawMessage
	if err = json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for key, value := range i.extra {
		if _, ok := merged[key]; !ok {
			merged[key] = value
		}
	}

	return json.Marshal(merged)
}
