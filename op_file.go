//go:build linux

package ioservice

import "github.com/pawelgaczynski/giouring"

// Openat submits an openat(2)-equivalent. Grounded on PrepareOpenat (see
// fallback.go for the pre-5.6 path). path is converted to a NUL-terminated
// byte slice, which the Awaiter pins until resolution since the kernel
// reads it asynchronously.
func (s *Service) Openat(dfd int, path string, openFlags int, mode uint32, flags SQEFlags) *Awaiter {
	if !nativeOpcodeSupport() {
		return s.openatFallback(dfd, path, openFlags, mode)
	}
	pathBytes := append([]byte(path), 0)
	return s.submitOp(flags, pathBytes, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareOpenat(dfd, pathBytes, openFlags, mode)
	})
}

// Close submits a close(2)-equivalent for fd. vlourme-rio's own ring layer
// declares a closeOp but never actually exercises IORING_OP_CLOSE against
// the real giouring dependency (its prepare() switch falls through to a
// plain nop for it); PrepareClose's own signature is nonetheless trivial and
// confirmed in pkg/liburing/submission.go, so on a kernel new enough to have
// the opcode (spec §4.D) this issues it for real instead of blocking the
// whole Run loop on a teardown syscall. Pre-5.6 kernels still take the
// direct syscall path.
func (s *Service) Close(fd int) *Awaiter {
	if !nativeOpcodeSupport() {
		return s.closeFallback(fd)
	}
	return s.submitOp(0, nil, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareClose(fd)
	})
}
