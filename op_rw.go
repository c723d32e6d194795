//go:build linux

package ioservice

import (
	"syscall"
	"unsafe"

	"github.com/pawelgaczynski/giouring"
)

// Read submits a read of len(buf) bytes from fd at offset (use ^uint64(0),
// i.e. the conventional -1, for the current file position) into buf.
// Grounded on vlourme-rio/pkg/liburing/submission.go's PrepareRead; on
// kernels older than 5.6 (spec §4.D), this falls back to a direct blocking
// syscall.Pread (syscall.Read for offset ^uint64(0)) since IORING_OP_READ
// does not exist there.
func (s *Service) Read(fd int, buf []byte, offset uint64, flags SQEFlags) *Awaiter {
	if !nativeOpcodeSupport() {
		return s.readFallback(fd, buf, offset)
	}
	base := bufBase(buf)
	return s.submitOp(flags, buf, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareRead(fd, base, uint32(len(buf)), offset)
	})
}

// Write submits a write of buf to fd at offset. See Read for the offset and
// fallback conventions.
func (s *Service) Write(fd int, buf []byte, offset uint64, flags SQEFlags) *Awaiter {
	if !nativeOpcodeSupport() {
		return s.writeFallback(fd, buf, offset)
	}
	base := bufBase(buf)
	return s.submitOp(flags, buf, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareWrite(fd, base, uint32(len(buf)), offset)
	})
}

// Readv submits a vectored read into bufs. Grounded on PrepareReadv.
func (s *Service) Readv(fd int, bufs [][]byte, offset uint64, flags SQEFlags) *Awaiter {
	iovecs := toIovecs(bufs)
	return s.submitOp(flags, pin{bufs, iovecs}, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareReadv(fd, uintptr(unsafe.Pointer(&iovecs[0])), uint32(len(iovecs)), offset)
	})
}

// Writev submits a vectored write from bufs. Grounded on PrepareWritev.
func (s *Service) Writev(fd int, bufs [][]byte, offset uint64, flags SQEFlags) *Awaiter {
	iovecs := toIovecs(bufs)
	return s.submitOp(flags, pin{bufs, iovecs}, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareWritev(fd, uintptr(unsafe.Pointer(&iovecs[0])), uint32(len(iovecs)), offset)
	})
}

// ReadFixed submits a read into buf from fd, using bufIndex of the
// Service's registered buffer table (see RegisterBuffers). Grounded on
// PrepareReadFixed.
func (s *Service) ReadFixed(fd int, buf []byte, offset uint64, bufIndex int, flags SQEFlags) *Awaiter {
	if !s.registeredBuffers {
		return preResolvedAwaiter(-int(syscall.EINVAL))
	}
	base := bufBase(buf)
	return s.submitOp(flags, buf, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareReadFixed(fd, base, uint32(len(buf)), offset, bufIndex)
	})
}

// WriteFixed submits a write from buf to fd, using bufIndex of the
// Service's registered buffer table. Grounded on PrepareWriteFixed.
func (s *Service) WriteFixed(fd int, buf []byte, offset uint64, bufIndex int, flags SQEFlags) *Awaiter {
	if !s.registeredBuffers {
		return preResolvedAwaiter(-int(syscall.EINVAL))
	}
	base := bufBase(buf)
	return s.submitOp(flags, buf, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareWriteFixed(fd, base, uint32(len(buf)), offset, bufIndex)
	})
}

// bufBase returns the uintptr giouring's Prepare* calls expect for a byte
// buffer, or 0 for an empty one (a zero-length read/write is valid and
// must not dereference buf[0]).
func bufBase(buf []byte) uintptr {
	if len(buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&buf[0]))
}

// pin bundles multiple values an Awaiter must keep alive together, since
// Awaiter.pin is a single any field.
type pin struct {
	a, b any
}
