//go:build linux

package ioservice

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestWithEntriesRejectsZero(t *testing.T) {
	cfg := defaultConfig()
	err := WithEntries(0)(&cfg)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidEntries)
}

func TestWithEntriesSetsValue(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, WithEntries(256)(&cfg))
	require.Equal(t, uint32(256), cfg.entries)
}

func TestDefaultConfigHasNopLogger(t *testing.T) {
	cfg := defaultConfig()
	require.Equal(t, uint32(DefaultEntries), cfg.entries)
	require.Equal(t, zerolog.Disabled, cfg.logger.GetLevel())
}

func TestWithSetupFlagsAndSQThreadOptions(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, WithSetupFlags(0x1)(&cfg))
	require.NoError(t, WithSQThreadCPU(2)(&cfg))
	require.NoError(t, WithSQThreadIdle(100)(&cfg))

	require.Equal(t, uint32(0x1), cfg.setupFlags)
	require.Equal(t, uint32(2), cfg.sqThreadCPU)
	require.Equal(t, uint32(100), cfg.sqThreadIdle)
}
