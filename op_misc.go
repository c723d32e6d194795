//go:build linux

package ioservice

import (
	"time"

	"github.com/pawelgaczynski/giouring"
)

// Nop submits a no-op completion. Grounded on the confirmed PrepareNop call
// shape in pkg/ring/ring.go's nop case; used by tests and by callers that
// just want a round trip through the ring (e.g. to unblock a Run loop with
// nothing else in flight).
func (s *Service) Nop(flags SQEFlags) *Awaiter {
	return s.submitOp(flags, nil, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareNop()
	})
}

// Poll submits a poll(2)-equivalent: the Awaiter resolves once fd's
// pollMask (POLLIN, POLLOUT, ...) is ready. Grounded on PreparePollAdd.
func (s *Service) Poll(fd int, pollMask uint32, flags SQEFlags) *Awaiter {
	return s.submitOp(flags, nil, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PreparePollAdd(fd, pollMask)
	})
}

// Timeout submits a standalone timer: the Awaiter resolves with
// ErrTimerExpired once d elapses, unless count other completions arrive
// first (count == 0 waits purely for the duration to elapse). Grounded on
// PrepareTimeout and on the original's dur2ts conversion.
func (s *Service) Timeout(d time.Duration, count uint32, flags SQEFlags) *Awaiter {
	ts := durationToTimespec(d)
	return s.submitOp(flags, &ts, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareTimeout(&ts, count, 0)
	})
}

// LinkTimeout submits a timeout linked to the SQE submitted immediately
// before it in program order (IOSQE_IO_LINK on the preceding operation is
// the caller's responsibility). When d elapses first, the kernel cancels
// the linked operation and that operation's Awaiter resolves with
// -ECANCELED; Await translates that into ErrCanceled. Grounded on the
// original's usage of io_uring_prep_link_timeout to bound an otherwise
// unbounded read.
func (s *Service) LinkTimeout(d time.Duration, flags SQEFlags) *Awaiter {
	ts := durationToTimespec(d)
	return s.submitOp(flags, &ts, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareLinkTimeout(&ts, 0)
	})
}
