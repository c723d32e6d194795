//go:build linux

package ioservice

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestPromiseResolveIsIdempotent(t *testing.T) {
	p := newPromise(nil, nil)
	p.resolve(42)
	p.resolve(99) // second resolve must be a silent no-op

	require.Equal(t, 42, p.await())
}

func TestPromiseCancelSkippedOnceResolved(t *testing.T) {
	called := false
	p := newPromise(func(uint64, unsafe.Pointer) { called = true }, nil)
	p.resolve(1)
	p.cancel()

	require.False(t, called)
}

func TestPromiseCancelInvokesHookOnce(t *testing.T) {
	calls := 0
	p := newPromise(func(uint64, unsafe.Pointer) { calls++ }, nil)
	p.cancel()
	p.cancel()

	require.Equal(t, 1, calls)
}

func TestPromiseUserDataRoundTrips(t *testing.T) {
	p := newPromise(nil, nil)
	got := promiseFromUserData(p.userData())

	require.Same(t, p, got)
}
