//go:build linux

package ioservice

import (
	"syscall"
	"time"
)

// durationToTimespec converts a relative duration into the kernel timespec
// shape io_uring_prep_timeout expects. Grounded on the original's dur2ts.
func durationToTimespec(d time.Duration) syscall.Timespec {
	return syscall.NsecToTimespec(d.Nanoseconds())
}

// toIovec fills a syscall.Iovec from a byte slice. Grounded on the
// original's to_iov helpers. The caller must keep buf alive for as long as
// the returned Iovec's base pointer is referenced by an in-flight
// operation — the runtime does not copy it, per spec §4.D's pointer
// lifetime hazard.
func toIovec(buf []byte) syscall.Iovec {
	iov := syscall.Iovec{}
	if len(buf) > 0 {
		iov.Base = &buf[0]
	}
	iov.SetLen(len(buf))
	return iov
}

// toIovecs fills one syscall.Iovec per buffer, for readv/writev.
func toIovecs(bufs [][]byte) []syscall.Iovec {
	iovecs := make([]syscall.Iovec, len(bufs))
	for i, b := range bufs {
		iovecs[i] = toIovec(b)
	}
	return iovecs
}
