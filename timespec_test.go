//go:build linux

package ioservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationToTimespec(t *testing.T) {
	ts := durationToTimespec(1500 * time.Millisecond)
	require.Equal(t, int64(1), ts.Sec)
	require.Equal(t, int64(500_000_000), ts.Nsec)
}

func TestToIovecEmptyBuffer(t *testing.T) {
	iov := toIovec(nil)
	require.Equal(t, uint64(0), iov.Len)
}

func TestToIovecsLength(t *testing.T) {
	bufs := [][]byte{make([]byte, 4), make([]byte, 8)}
	iovecs := toIovecs(bufs)
	require.Len(t, iovecs, 2)
	require.Equal(t, uint64(4), iovecs[0].Len)
	require.Equal(t, uint64(8), iovecs[1].Len)
}
