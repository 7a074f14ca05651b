// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// validate checks the merged [Settings] before they are used at startup.
// A missing session is reported as [ErrMissingSession] ahead of any other
// problem.
func (cfg *Settings) validate() error {
	if strings.TrimSpace(cfg.Session) == "" {
		return ErrMissingSession
	}

	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.ConfigPath, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	err = validation.ValidateStruct(&cfg.Vault,
		validation.Field(&cfg.Vault.Binary, validation.Required),
		validation.Field(&cfg.Vault.Backend, validation.Required, validation.In(BackendCLI, BackendServe)),
		validation.Field(&cfg.Vault.ServeURL,
			validation.When(cfg.Vault.Backend == BackendServe, validation.Required, is.URL)),
		validation.Field(&cfg.Vault.Lookup, validation.Required, validation.In(LookupSearch, LookupExact)),
		validation.Field(&cfg.Vault.Timeout, validation.Min(time.Duration(0))),
	)
	if err != nil {
		return fmt.Errorf("%w: vault: %w", ErrInvalidSettings, err)
	}

	return nil
}
