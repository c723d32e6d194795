//go:build linux

package ioservice

import (
	"runtime"
	"syscall"
)

// The compatibility fallbacks below exist because IORING_OP_READ,
// IORING_OP_WRITE, IORING_OP_OPENAT and IORING_OP_CLOSE were only added in
// Linux 5.6; on older kernels the corresponding operation methods perform
// the equivalent blocking syscall directly and hand back an
// already-resolved Awaiter, per spec §4.D and the original's
// "#if LINUX_KERNEL_VERSION >= 56" branches. See op_file.go's Close for why
// IORING_OP_CLOSE is still issued for real on kernels that have it, despite
// vlourme-rio/pkg/ring never exercising that opcode itself.
//
// Each fallback yields once before the blocking syscall (runtime.Gosched,
// mirroring the original's "co_await yield(iflags); co_return ::openat(...)"
// and the same runtime.Gosched idiom vlourme-rio/pkg/ring/ring.go and
// pkg/async/promise.go use to hand the scheduler a turn), so a goroutine
// already blocked on the driver's Run loop gets a chance to make progress
// before this goroutine ties up an OS thread in a blocking syscall.

func (s *Service) readFallback(fd int, buf []byte, offset uint64) *Awaiter {
	runtime.Gosched()
	var n int
	var err error
	if offset == ^uint64(0) {
		n, err = syscall.Read(fd, buf)
	} else {
		n, err = syscall.Pread(fd, buf, int64(offset))
	}
	return preResolvedAwaiter(syscallResult(n, err))
}

func (s *Service) writeFallback(fd int, buf []byte, offset uint64) *Awaiter {
	runtime.Gosched()
	var n int
	var err error
	if offset == ^uint64(0) {
		n, err = syscall.Write(fd, buf)
	} else {
		n, err = syscall.Pwrite(fd, buf, int64(offset))
	}
	return preResolvedAwaiter(syscallResult(n, err))
}

func (s *Service) openatFallback(dfd int, path string, openFlags int, mode uint32) *Awaiter {
	runtime.Gosched()
	fd, err := syscall.Openat(dfd, path, openFlags, mode)
	return preResolvedAwaiter(syscallResult(fd, err))
}

func (s *Service) closeFallback(fd int) *Awaiter {
	runtime.Gosched()
	err := syscall.Close(fd)
	return preResolvedAwaiter(syscallResult(0, err))
}

// syscallResult folds a (n, err) pair from a package-syscall call into the
// single negative-errno-or-result int an io_uring completion would have
// produced, so preResolvedAwaiter's result flows through the same
// errnoResult interpretation as a real CQE.
func syscallResult(n int, err error) int {
	if err != nil {
		if errno, ok := err.(syscall.Errno); ok {
			return -int(errno)
		}
		return -int(syscall.EIO)
	}
	return n
}
