// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// companion client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the keystore passphrase and
	// debugging switches.
	App App `envPrefix:"APP_"`

	// Companion holds the network address and timeout of the companion
	// process endpoint.
	Companion Companion `envPrefix:"COMPANION_"`

	// Storage holds the association store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Query holds the one-shot query parameters. Populated from flags
	// only; a query value is an argument, not an environment concern.
	Query Query

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Passphrase protects the shared key at rest in the association
	// store. Must be kept confidential.
	// Env: APP_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`

	// Debug enables the request/response recorder.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// DebugRecordLimit caps how many records the recorder retains in
	// memory. Zero selects the recorder's default.
	// Env: APP_DEBUG_RECORD_LIMIT
	DebugRecordLimit int `env:"DEBUG_RECORD_LIMIT"`
}

// Companion holds the companion process endpoint settings.
type Companion struct {
	// Address is the companion endpoint in "host:port" format
	// (e.g. "localhost:19455").
	// Env: COMPANION_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds one HTTP round trip (e.g. "30s", "1m").
	// Env: COMPANION_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the association store.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite file path of the association store
	// (e.g. "~/.config/go-keepass-http/associations.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Query holds the one-shot credential query parameters.
type Query struct {
	// URL is the site URL to search for. Mutually exclusive with
	// SearchString.
	URL string

	// SearchString is the custom search value. Mutually exclusive with
	// URL.
	SearchString string
}
