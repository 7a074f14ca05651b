// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the global command-line flags. Only flags the user passed
// are applied, so an explicit zero value such as --strict-sync=false or
// --timeout 0 still overrides the environment.
type Flags struct {
	fs     *pflag.FlagSet
	values Settings
}

// flagSetters copies one flag's value into the merged settings.
var flagSetters = map[string]func(dst, src *Settings){
	"config":      func(dst, src *Settings) { dst.ConfigPath = src.ConfigPath },
	"bw":          func(dst, src *Settings) { dst.Vault.Binary = src.Vault.Binary },
	"backend":     func(dst, src *Settings) { dst.Vault.Backend = src.Vault.Backend },
	"serve-url":   func(dst, src *Settings) { dst.Vault.ServeURL = src.Vault.ServeURL },
	"lookup":      func(dst, src *Settings) { dst.Vault.Lookup = src.Vault.Lookup },
	"strict-sync": func(dst, src *Settings) { dst.Vault.StrictSync = src.Vault.StrictSync },
	"timeout":     func(dst, src *Settings) { dst.Vault.Timeout = src.Vault.Timeout },
	"log-level":   func(dst, src *Settings) { dst.Log.Level = src.Log.Level },
	"log-format":  func(dst, src *Settings) { dst.Log.Format = src.Log.Format },
}

// BindFlags registers the global flags on fs.
//
// Flags:
//
//	--config      folder config file path (default bwenv.json)
//	--bw          vault CLI executable (default bw)
//	--backend     cli or serve (default cli)
//	--serve-url   bw serve base URL (default http://localhost:8087)
//	--lookup      search or exact (default search)
//	--strict-sync fail the command when a vault sync fails
//	--timeout     per-call timeout, 0 disables it (default 60s)
//	--log-level   debug, info, warn, error (default info)
//	--log-format  auto, console, json (default auto)
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	s := &f.values
	d := Defaults()

	fs.StringVar(&s.ConfigPath, "config", "", "config file (default "+d.ConfigPath+")")
	fs.StringVar(&s.Vault.Binary, "bw", "", "vault CLI executable (default "+d.Vault.Binary+")")
	fs.StringVar(&s.Vault.Backend, "backend", "", "vault backend: cli or serve (default "+d.Vault.Backend+")")
	fs.StringVar(&s.Vault.ServeURL, "serve-url", "", "bw serve base URL (default "+d.Vault.ServeURL+")")
	fs.StringVar(&s.Vault.Lookup, "lookup", "", "item lookup: search or exact (default "+d.Vault.Lookup+")")
	fs.BoolVar(&s.Vault.StrictSync, "strict-sync", false, "fail when a vault sync fails")
	fs.DurationVar(&s.Vault.Timeout, "timeout", 0, "timeout of a single vault call, 0 disables it (default "+d.Vault.Timeout.String()+")")
	fs.StringVar(&s.Log.Level, "log-level", "", "log level: debug, info, warn, error (default "+d.Log.Level+")")
	fs.StringVar(&s.Log.Format, "log-format", "", "log format: auto, console, json (default "+d.Log.Format+")")

	return f
}

// apply copies every flag the user passed into dst.
func (f *Flags) apply(dst *Settings) {
	for name, set := range flagSetters {
		if f.fs.Changed(name) {
			set(dst, &f.values)
		}
	}
}
