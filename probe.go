//go:build linux

package ioservice

import (
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// kernelVersion reports the running kernel's (major, minor) release
// numbers, parsed from uname(2). Grounded on the version gate in
// vlourme-rio/pkg/liburing/aio/poller.go, which performs the same check to
// decide whether newer opcodes are safe to use.
func kernelVersion() (major, minor int) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return 0, 0
	}
	release := unix.ByteSliceToString(uts.Release[:])
	parts := strings.SplitN(release, ".", 3)
	if len(parts) < 2 {
		return 0, 0
	}
	major, _ = strconv.Atoi(parts[0])
	minor, _ = strconv.Atoi(strings.TrimRightFunc(parts[1], func(r rune) bool {
		return r < '0' || r > '9'
	}))
	return major, minor
}

var (
	probeOnce  sync.Once
	probeMajor int
	probeMinor int
)

func currentKernelVersion() (int, int) {
	probeOnce.Do(func() {
		probeMajor, probeMinor = kernelVersion()
	})
	return probeMajor, probeMinor
}

// versionAtLeast reports whether the running kernel is >= major.minor.
func versionAtLeast(major, minor int) bool {
	curMajor, curMinor := currentKernelVersion()
	if curMajor != major {
		return curMajor > major
	}
	return curMinor >= minor
}

// nativeOpcodeSupport reports whether the running kernel's io_uring build
// is expected to natively support read/write/openat/close as io_uring
// opcodes rather than requiring the compatibility fallback of spec §4.D.
// Grounded on the original's "#if LINUX_KERNEL_VERSION >= 56" compile-time
// branches (kernel 5.6 added IORING_OP_READ/WRITE/OPENAT/CLOSE), realized
// here as a runtime check since Go has no such compile-time kernel gate.
func nativeOpcodeSupport() bool {
	return versionAtLeast(5, 6)
}
