//go:build linux

package ioservice_test

import (
	"os"
	"testing"

	"github.com/faizol/ioservice"
	"github.com/stretchr/testify/require"
)

func TestRegisterFilesLifecycle(t *testing.T) {
	svc := newTestService(t)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	require.NoError(t, svc.RegisterFiles([]int{int(r.Fd()), int(w.Fd())}))
	require.NoError(t, svc.UpdateRegisteredFiles(0, []int{int(r.Fd()), int(w.Fd())}))
	require.NoError(t, svc.UnregisterFiles())
}

func TestUpdateRegisteredFilesBeforeRegisterFails(t *testing.T) {
	svc := newTestService(t)

	err := svc.UpdateRegisteredFiles(0, []int{0})
	require.Error(t, err)
	require.ErrorIs(t, err, ioservice.ErrNotRegistered)
}

func TestRegisterBuffersLifecycle(t *testing.T) {
	svc := newTestService(t)

	buffers := [][]byte{make([]byte, 4096), make([]byte, 4096)}
	require.NoError(t, svc.RegisterBuffers(buffers))
	require.NoError(t, svc.UnregisterBuffers())
}
