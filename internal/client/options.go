// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"io"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-bwenv/internal/adapter"
	"github.com/MKhiriev/go-bwenv/internal/utils"
	"github.com/MKhiriev/go-bwenv/models"
)

// Option is a functional option for configuring the application.
type Option func(*options)

type options struct {
	environ   map[string]string
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	adapters  AdapterFactory
	buildInfo models.AppBuildInfo
	ids       IDGenerator
}

func defaultOptions() options {
	return options{
		environ:   env.ToMap(os.Environ()),
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		adapters:  adapter.NewVaultAdapter,
		buildInfo: models.NewAppBuildInfo("", "", ""),
		ids:       utils.NewRunIDGenerator(),
	}
}

// WithEnviron replaces the process environment used for settings.
func WithEnviron(environ map[string]string) Option {
	return func(o *options) {
		o.environ = environ
	}
}

// WithStdin sets the stream read by `set -i -`.
func WithStdin(r io.Reader) Option {
	return func(o *options) {
		o.stdin = r
	}
}

// WithStdout sets the stream written by `get -o -` and `version`.
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// WithStderr sets the log destination.
func WithStderr(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}

// WithAdapterFactory replaces the vault transport constructor.
func WithAdapterFactory(f AdapterFactory) Option {
	return func(o *options) {
		o.adapters = f
	}
}

// WithBuildInfo sets the data printed by `version`.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(o *options) {
		o.buildInfo = info
	}
}

// WithIDGenerator replaces the run identifier source.
func WithIDGenerator(g IDGenerator) Option {
	return func(o *options) {
		o.ids = g
	}
}
