// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// RunIDGenerator produces the run id attached to every log line of one
// bwenv invocation.
type RunIDGenerator struct {
	newID func() (uuid.UUID, error)
}

// NewRunIDGenerator returns a generator of time-ordered UUIDv7 run ids.
func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{newID: uuid.NewV7}
}

// Generate returns a new run id. When the time-ordered source fails the id
// is a random UUIDv4 instead, so a run is never left unlabelled.
func (g *RunIDGenerator) Generate() string {
	id, err := g.newID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
