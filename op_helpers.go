//go:build linux

package ioservice

import "github.com/pawelgaczynski/giouring"

// submitOp is the shared tail end of every op_*.go method: acquire an SQE
// under sqMu, let prepare fill in the opcode-specific fields, attach flags
// and a fresh promise's user-data, and hand back the Awaiter the caller
// suspends on. pinVal is whatever buffer/iovec/timespec the prepared SQE
// still points at; Awaiter keeps it alive until the operation resolves.
func (s *Service) submitOp(flags SQEFlags, pinVal any, prepare func(sqe *giouring.SubmissionQueueEntry)) *Awaiter {
	s.sqMu.Lock()
	sqe := s.acquireSQE()
	prepare(sqe)
	sqe.SetFlags(uint32(flags))
	p := newPromise(s.cancelFn(), nil)
	sqe.SetData64(p.userData())
	s.sqMu.Unlock()
	return newAwaiter(p, pinVal)
}
