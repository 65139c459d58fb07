package config

import (
	"fmt"
	"time"
)

// Default endpoint of a companion process on the local machine.
const (
	DefaultCompanionAddress = "localhost:19455"
	DefaultRequestTimeout   = 30 * time.Second
)

// ClientApp holds client-side application settings derived from the
// shared structured config.
type ClientApp struct {
	// Passphrase protects the shared key at rest.
	Passphrase string
	// Debug enables the request/response recorder.
	Debug bool
	// DebugRecordLimit caps the recorder's in-memory tail.
	DebugRecordLimit int
}

// ClientCompanion holds network settings for the companion endpoint.
type ClientCompanion struct {
	// Address is the companion HTTP endpoint.
	Address string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite path of the association store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientQuery holds the one-shot query parameters.
type ClientQuery struct {
	// URL is the site URL to search for; empty when SearchString is
	// used instead.
	URL string
	// SearchString is the custom search value; empty when URL is used.
	SearchString string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Companion contains the companion endpoint address and timeout.
	Companion ClientCompanion
	// Storage contains client storage settings.
	Storage ClientStorage
	// Query contains the requested credential search.
	Query ClientQuery
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It merges environment variables, command-line flags, and an optional
// JSON file via the config builder, applies defaults for the companion
// endpoint, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Passphrase:       cfg.App.Passphrase,
			Debug:            cfg.App.Debug,
			DebugRecordLimit: cfg.App.DebugRecordLimit,
		},
		Companion: ClientCompanion{
			Address:        cfg.Companion.Address,
			RequestTimeout: cfg.Companion.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Query: ClientQuery{
			URL:          cfg.Query.URL,
			SearchString: cfg.Query.SearchString,
		},
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Companion.Address == "" {
		cfg.Companion.Address = DefaultCompanionAddress
	}
	if cfg.Companion.RequestTimeout == 0 {
		cfg.Companion.RequestTimeout = DefaultRequestTimeout
	}
}
