// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged config as a server configuration.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.GRPCAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database dsn is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Files.Dir == "" {
		return fmt.Errorf("%w: files dir is empty", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.Version == "" {
		return fmt.Errorf("%w: version is empty", ErrInvalidAppConfigs)
	}

	if cfg.Collab.SendBuffer <= 0 || cfg.Collab.WriteTimeout <= 0 || cfg.Collab.PongTimeout <= 0 {
		return ErrInvalidCollabConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.Token == "" {
		return ErrInvalidAdapterConfigs
	}

	w := cfg.Workers
	if w.InventoryID <= 0 || w.DebounceInterval <= 0 || w.FlushInterval <= 0 || w.FlushTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
