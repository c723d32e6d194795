//go:build linux

package ioservice

import "unsafe"

// cancelFn returns the cancellation hook every promise created by an
// op_*.go method is given (spec §4.A/§5: "no synchronous cancel"). Calling
// it queues an IORING_OP_ASYNC_CANCEL targeting the original operation's
// user-data and flushes it to the kernel immediately — it does not wait for
// the next Run iteration's Submit, since Run may already be blocked inside
// WaitCQEs for the very completion this cancellation is trying to hurry
// along. Grounded on the original's cancel-via-io_uring_prep_cancel path in
// the awaiter destructor, generalized from a single-threaded assumption to
// one where the cancelling goroutine is not the one driving Run.
func (s *Service) cancelFn() cancelFunc {
	return func(userData uint64, _ unsafe.Pointer) {
		s.sqMu.Lock()
		sqe := s.acquireSQE()
		sqe.PrepareCancel64(userData, 0)
		sqe.SetData64(0)
		_, _ = s.ring.Submit()
		s.sqMu.Unlock()
	}
}
