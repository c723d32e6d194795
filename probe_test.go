//go:build linux

package ioservice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionAtLeastAgreesWithItself(t *testing.T) {
	major, minor := currentKernelVersion()
	require.True(t, versionAtLeast(major, minor))
	require.False(t, versionAtLeast(major+1, 0))
}

func TestVersionAtLeastZeroAlwaysTrue(t *testing.T) {
	require.True(t, versionAtLeast(0, 0))
}
