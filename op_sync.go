//go:build linux

package ioservice

import "github.com/pawelgaczynski/giouring"

// Fsync submits an fsync(2)-equivalent for fd. fsyncFlags is the io_uring
// fsync flags word (e.g. IORING_FSYNC_DATASYNC), not an SQEFlags value — pass it
// through raw since this package does not attempt to enumerate every
// opcode-specific flag the kernel defines. Grounded on PrepareFsync.
func (s *Service) Fsync(fd int, fsyncFlags uint32, flags SQEFlags) *Awaiter {
	return s.submitOp(flags, nil, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareFsync(fd, fsyncFlags)
	})
}

// SyncFileRange submits a sync_file_range(2)-equivalent. Grounded on
// PrepareSyncFileRange.
func (s *Service) SyncFileRange(fd int, length uint32, offset uint64, syncFlags int, flags SQEFlags) *Awaiter {
	return s.submitOp(flags, nil, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareSyncFileRange(fd, length, offset, syncFlags)
	})
}
