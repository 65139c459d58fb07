// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Companion.Address == "" || cfg.Companion.RequestTimeout == 0 {
		return ErrInvalidCompanionConfigs
	}

	if cfg.App.Passphrase == "" {
		return ErrInvalidAppConfigs
	}

	if (cfg.Query.URL == "") == (cfg.Query.SearchString == "") {
		return ErrInvalidQueryConfigs
	}

	return nil
}
