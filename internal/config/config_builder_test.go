package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, 8790, cfg.Server.PortFrom)
	assert.Equal(t, 8799, cfg.Server.PortTo)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "addonpair.db", cfg.Storage.DSN)
	assert.Equal(t, 10*time.Second, cfg.Fetcher.Timeout)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{PortFrom: 9000}},
		&StructuredConfig{Server: Server{PortFrom: 9500, PortTo: 9600}},
	)
	cfg, err := b.withDefaults().build()

	require.NoError(t, err)
	// First non-zero value wins; zero fields fall through to later sources.
	assert.Equal(t, 9000, cfg.Server.PortFrom)
	assert.Equal(t, 9600, cfg.Server.PortTo)
}

func TestBuild_ValidationFailurePropagates(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{PortFrom: 9000, PortTo: 8000},
	})

	_, err := b.withDefaults().build()

	// PortTo < PortFrom survives merging because both fields are non-zero.
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestBuild_AccumulatedErrorShortCircuits(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.withDefaults().build()

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	b.withJSON()

	assert.Error(t, b.err)
}
