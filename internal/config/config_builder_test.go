package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Companion: Companion{Address: "localhost:19455"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "associations.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:19455", cfg.Companion.Address)
	assert.Equal(t, "associations.db", cfg.Storage.DB.DSN)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Companion: Companion{Address: "env:1"}},
		&StructuredConfig{Companion: Companion{Address: "flag:2", RequestTimeout: time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env:1", cfg.Companion.Address)
	assert.Equal(t, time.Minute, cfg.Companion.RequestTimeout)
}

// ── withEnv / withJSON ────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvironment(t *testing.T) {
	t.Setenv("COMPANION_ADDRESS", "127.0.0.1:19455")
	t.Setenv("COMPANION_REQUEST_TIMEOUT", "45s")
	t.Setenv("APP_DEBUG", "true")

	cfg, err := newConfigBuilder().withEnv().build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:19455", cfg.Companion.Address)
	assert.Equal(t, 45*time.Second, cfg.Companion.RequestTimeout)
	assert.True(t, cfg.App.Debug)
}

func TestWithJSON_MergedUnderEnv(t *testing.T) {
	var fileCfg StructuredJSONConfig
	fileCfg.Companion.Address = "json:3"
	fileCfg.Companion.RequestTimeout = Duration(15 * time.Second)
	fileCfg.Storage.DB.DSN = "from-json.db"
	path := writeTempJSONConfig(t, fileCfg)

	t.Setenv("COMPANION_ADDRESS", "env:1")
	t.Setenv("CONFIG", path)

	cfg, err := newConfigBuilder().withEnv().withJSON().build()
	require.NoError(t, err)

	// env wins where both define a value, json fills the gaps
	assert.Equal(t, "env:1", cfg.Companion.Address)
	assert.Equal(t, 15*time.Second, cfg.Companion.RequestTimeout)
	assert.Equal(t, "from-json.db", cfg.Storage.DB.DSN)
}

func TestWithJSON_MissingFileFailsBuild(t *testing.T) {
	t.Setenv("CONFIG", "/nonexistent/config.json")

	_, err := newConfigBuilder().withEnv().withJSON().build()
	require.Error(t, err)
}

// ── ClientConfig validation ───────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			App:       ClientApp{Passphrase: "pass"},
			Companion: ClientCompanion{Address: "localhost:19455", RequestTimeout: time.Second},
			Storage:   ClientStorage{DB: ClientDB{DSN: "associations.db"}},
			Query:     ClientQuery{URL: "https://example.com"},
		}
	}

	require.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Companion.Address = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidCompanionConfigs)

	cfg = valid()
	cfg.App.Passphrase = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg = valid()
	cfg.Query = ClientQuery{}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidQueryConfigs)

	cfg = valid()
	cfg.Query = ClientQuery{URL: "https://example.com", SearchString: "bank"}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidQueryConfigs)
}

func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultCompanionAddress, cfg.Companion.Address)
	assert.Equal(t, DefaultRequestTimeout, cfg.Companion.RequestTimeout)
}
