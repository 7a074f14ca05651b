// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// bwenv services and the command-line client.
//
// All Msg* constants are human-readable message strings written into log
// entries to describe the outcome of an operation. Keeping them in one place
// ensures consistent wording across commands. Constants ending in "f" are
// format strings taking the item, folder or path name.
package app

const (
	// MsgNoSession is logged at fatal level when BW_SESSION is unset.
	MsgNoSession = "No BW_SESSION"

	// MsgMissingConfigf is logged at fatal level when the folder config file
	// is missing, unreadable or has no folder id.
	MsgMissingConfigf = "Missing config_file %s"

	// MsgCommandFailed is logged for every other failed invocation.
	MsgCommandFailed = "command failed"

	// MsgSynced is logged after a successful vault sync.
	MsgSynced = "Synced"

	// MsgSyncFailed is logged when a sync fails and strict sync is off.
	MsgSyncFailed = "sync failed, continuing with local vault state"

	// MsgCreatedf is logged after a new item was created.
	MsgCreatedf = "Created %s"

	// MsgUpdatedf is logged after an existing item's fields were replaced.
	MsgUpdatedf = "Updated %s"

	// MsgLoadedf is logged after an item was written to an env file.
	MsgLoadedf = "Loaded %s"

	// MsgInitializedf is logged after the folder config was written.
	MsgInitializedf = "Initialized %s"

	// MsgDuplicateFields is logged when an item repeats a field name.
	MsgDuplicateFields = "item has duplicate field names, the last value wins"
)
