//go:build linux

// Package ioservice is a single-threaded, cooperative asynchronous I/O
// runtime built on top of Linux io_uring. User code issues system-call
// operations (read, write, accept, connect, send/recv, timers, fsync,
// open, close, poll, yield) as suspendable operations; a driver loop
// submits them to the kernel and resumes the initiating goroutine once
// the kernel posts a completion.
//
// The package does not wrap application-level protocols, command-line
// parsing, logging setup, or file-descriptor lifecycle policy — those are
// left to callers. Exactly one goroutine may drive a *Service via Run; all
// other access happens through the suspension points on Awaiter.
package ioservice
