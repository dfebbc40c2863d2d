// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing token sign key is reported as [ErrMissingTokenSignKey]: the
// server must not accept traffic without it.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.PasswordMinLength < 1 || cfg.App.TokenPrefixLength < 1 {
		return fmt.Errorf("%w: password min length and token prefix length must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.DefaultPageSize < 1 || cfg.App.MaxPageSize < cfg.App.DefaultPageSize {
		return fmt.Errorf("%w: page sizes must satisfy 0 < default <= max", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
