// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veridict Authors

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Address == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	db := cfg.Storage.DB
	if db.Host == "" || db.Name == "" || db.User == "" {
		return ErrInvalidStorageConfigs
	}
	if db.Port < 1 || db.Port > 65535 {
		return ErrInvalidStorageConfigs
	}

	cls := cfg.Classifier
	if strings.TrimSpace(cls.Address) == "" || cls.RequestTimeout <= 0 {
		return ErrInvalidClassifierConfigs
	}
	if cls.RealLabelID < 0 {
		return ErrInvalidClassifierConfigs
	}

	return nil
}
