//go:build linux

package ioservice

import (
	"bytes"
	"syscall"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestErrnoResultSuccess(t *testing.T) {
	n, err := errnoResult(12)
	require.NoError(t, err)
	require.Equal(t, 12, n)
}

func TestErrnoResultTimerExpired(t *testing.T) {
	_, err := errnoResult(-int(syscall.ETIME))
	require.ErrorIs(t, err, ErrTimerExpired)
}

func TestErrnoResultCanceled(t *testing.T) {
	_, err := errnoResult(-int(syscall.ECANCELED))
	require.ErrorIs(t, err, ErrCanceled)
}

func TestErrnoResultPlainErrno(t *testing.T) {
	_, err := errnoResult(-int(syscall.EBADF))
	require.ErrorIs(t, err, syscall.EBADF)
}

func TestOpErrorUnwrapsErrno(t *testing.T) {
	opErr := newSetupError("queue_init", syscall.ENOMEM)
	require.ErrorIs(t, opErr, syscall.ENOMEM)
	require.Contains(t, opErr.Error(), "queue_init")
}

func TestIsContractViolationPanics(t *testing.T) {
	svc := &Service{cfg: config{logger: zerolog.Nop()}}

	require.Panics(t, func() {
		svc.isContractViolation(true, "boom")
	})
	require.NotPanics(t, func() {
		svc.isContractViolation(false, "fine")
	})
}

func TestIsContractViolationLogsWhenDebugAbortEnabled(t *testing.T) {
	var buf bytes.Buffer
	svc := &Service{cfg: config{logger: zerolog.New(&buf), debugAbort: true}}

	require.Panics(t, func() {
		svc.isContractViolation(true, "boom")
	})
	require.Contains(t, buf.String(), "contract violation")
}
