// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the bwenv command-line application.
//
// It resolves runtime settings, performs the startup checks (session token,
// folder config), wires the vault adapter, stores and services for one
// invocation, and dispatches the init, get, set, sync and version verbs.
package client
