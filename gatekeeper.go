//go:build linux

package ioservice

import "github.com/pawelgaczynski/giouring"

// acquireSQE implements the Submission-Queue Gatekeeper of spec §4.C: every
// operation method goes through here instead of calling s.ring.GetSQE()
// directly. Grounded on the original's io_uring_get_sqe_safe: a nil SQE
// under load means the submission queue is full, not that the ring is
// broken, so the fix is to advance the completion queue past whatever the
// kernel has already finished, submit, and retry once. A second nil is a
// contract violation — spec §4.C requires ring depth to be sized so this
// never happens in steady state.
//
// Caller must hold sqMu.
func (s *Service) acquireSQE() *giouring.SubmissionQueueEntry {
	if sqe := s.ring.GetSQE(); sqe != nil {
		return sqe
	}

	flushed := s.drainCompletions()
	s.logSQFlush(flushed)

	if _, err := s.ring.Submit(); err != nil {
		s.isContractViolation(true, "submit during submission-queue pressure flush failed: "+err.Error())
	}

	sqe := s.ring.GetSQE()
	s.isContractViolation(sqe == nil, "submission queue entry still nil after flush-and-retry")
	return sqe
}

// drainCompletions resolves and advances past every completion already
// sitting in the CQ ring, without blocking. It is the non-waiting half of
// Run's loop body, factored out so acquireSQE's pressure-flush path and
// Run itself share one implementation instead of two copies of the same
// peek/resolve/advance sequence. Caller must hold sqMu.
func (s *Service) drainCompletions() uint32 {
	count := s.ring.PeekBatchCQE(s.cqBuf)
	for i := uint32(0); i < count; i++ {
		cqe := s.cqBuf[i]
		s.cqBuf[i] = nil
		if cqe.UserData == 0 {
			continue
		}
		promiseFromUserData(cqe.UserData).resolve(int(cqe.Res))
	}
	if count > 0 {
		s.ring.CQAdvance(count)
	}
	return count
}
