package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
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

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:8000"}},
		&StructuredConfig{Transport: Transport{SendQueueSize: 4}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 4, cfg.Transport.SendQueueSize)
}

// TestBuild_LaterSourceWins verifies that a non-zero field of a later config
// overrides the same field of an earlier one.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "env:1", RequestTimeout: time.Second}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "flag:2"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag:2", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Transport: Transport{DialTimeout: -time.Second},
	})

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeDuration)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "localhost:9000"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:9000", b.configs[0].Adapter.HTTPAddress)
}

func TestWithFlags_RecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "nope"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)

	_, err := b.build()
	assert.Error(t, err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathSkips(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, `{"adapter":{"http_address":"first:1"}}`)
	second := writeTempJSONConfig(t, `{"adapter":{"http_address":"second:2"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second:2", b.configs[2].Adapter.HTTPAddress)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: filepath.Join(t.TempDir(), "missing.json"),
	})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestBuilderChain_JSONOverridesFlagsAndEnv verifies the precedence of the
// whole chain: env < flags < json file.
func TestBuilderChain_JSONOverridesFlagsAndEnv(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, `{"transport":{"send_queue_size":64}}`)
	t.Setenv("POKER_ADAPTER_ADDRESS", "env:1")
	t.Setenv("POKER_TRANSPORT_SEND_QUEUE_SIZE", "2")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-a", "localhost:7000", "-c", path}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:7000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 64, cfg.Transport.SendQueueSize)
	assert.Equal(t, path, cfg.JSONFilePath)
}
