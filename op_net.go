//go:build linux

package ioservice

import (
	"syscall"
	"unsafe"

	"github.com/pawelgaczynski/giouring"
)

// Accept submits an accept(2)-equivalent on the listening socket fd. addr
// and addrLen are caller-owned output storage, filled in by the kernel the
// same way accept(2) itself would; the accepted connection's fd is the
// Awaiter's resolved result. Grounded on vlourme-rio/pkg/ring/ring.go's
// acceptOp case, which is the confirmed real giouring call shape — addr and
// addrLen travel as raw pointer-sized integers, not as *RawSockaddrAny,
// unlike the PrepareAccept vlourme-rio's own from-scratch liburing port
// declares.
func (s *Service) Accept(fd int, addr *syscall.RawSockaddrAny, addrLen *uint32, acceptFlags int, flags SQEFlags) *Awaiter {
	addrPtr := uintptr(unsafe.Pointer(addr))
	addrLenPtr := uint64(uintptr(unsafe.Pointer(addrLen)))
	return s.submitOp(flags, pin{addr, addrLen}, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareAccept(fd, addrPtr, addrLenPtr, uint32(acceptFlags))
	})
}

// Connect submits a connect(2)-equivalent on fd.
func (s *Service) Connect(fd int, addr *syscall.RawSockaddrAny, addrLen uint64, flags SQEFlags) *Awaiter {
	addrPtr := uintptr(unsafe.Pointer(addr))
	return s.submitOp(flags, addr, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareConnect(fd, addrPtr, addrLen)
	})
}

// Recv submits a recv(2)-equivalent into buf. Grounded on the confirmed
// PrepareRecv call shape in pkg/ring/ring.go's receiveOp case.
func (s *Service) Recv(fd int, buf []byte, recvFlags int, flags SQEFlags) *Awaiter {
	base := bufBase(buf)
	return s.submitOp(flags, buf, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareRecv(fd, base, uint32(len(buf)), recvFlags)
	})
}

// Send submits a send(2)-equivalent of buf. Grounded on the confirmed
// PrepareSend call shape in pkg/ring/ring.go's sendOp case.
func (s *Service) Send(fd int, buf []byte, sendFlags int, flags SQEFlags) *Awaiter {
	base := bufBase(buf)
	return s.submitOp(flags, buf, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareSend(fd, base, uint32(len(buf)), sendFlags)
	})
}

// RecvMsg submits a recvmsg(2)-equivalent. msg is caller-owned and must
// stay valid until the Awaiter resolves — the Awaiter pins it, but its
// Iovec/Name/Control buffers are the caller's to keep alive. Grounded on
// the confirmed PrepareRecvMsg call shape in pkg/ring/ring.go's
// receiveMsgOp case.
func (s *Service) RecvMsg(fd int, msg *syscall.Msghdr, msgFlags uint32, flags SQEFlags) *Awaiter {
	return s.submitOp(flags, msg, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareRecvMsg(fd, msg, msgFlags)
	})
}

// SendMsg submits a sendmsg(2)-equivalent. Grounded on the confirmed
// PrepareSendMsg call shape in pkg/ring/ring.go's sendMsgOp case.
func (s *Service) SendMsg(fd int, msg *syscall.Msghdr, msgFlags uint32, flags SQEFlags) *Awaiter {
	return s.submitOp(flags, msg, func(sqe *giouring.SubmissionQueueEntry) {
		sqe.PrepareSendMsg(fd, msg, msgFlags)
	})
}
