//go:build linux

package ioservice

import (
	"github.com/rs/zerolog"
)

// DefaultEntries is the submission-queue depth used when no WithEntries
// option is given.
const DefaultEntries = 64

// SQEFlags is a pass-through bitmask of IOSQE_* submission flags. The
// runtime never interprets these bits; it forwards them unchanged to the
// kernel via SubmissionQueueEntry.SetFlags.
type SQEFlags uint8

const (
	// FlagFixedFile marks the fd argument as an index into a registered
	// file set rather than a raw file descriptor.
	FlagFixedFile SQEFlags = 1 << 0
	// FlagIODrain waits for all previously submitted operations to
	// complete before this one is started.
	FlagIODrain SQEFlags = 1 << 1
	// FlagIOLink links this operation to the next submitted SQE.
	FlagIOLink SQEFlags = 1 << 2
	// FlagIOHardlink is like FlagIOLink but does not sever the link on
	// failure of this operation.
	FlagIOHardlink SQEFlags = 1 << 3
	// FlagAsync forces async (io-wq) handling of the operation.
	FlagAsync SQEFlags = 1 << 4
	// FlagBufferSelect selects a buffer from a previously registered
	// provided-buffer group rather than using the supplied buffer.
	FlagBufferSelect SQEFlags = 1 << 5
)

type config struct {
	entries      uint32
	setupFlags   uint32
	sqThreadCPU  uint32
	sqThreadIdle uint32
	logger       zerolog.Logger
	debugAbort   bool
}

func defaultConfig() config {
	return config{
		entries: DefaultEntries,
		logger:  zerolog.Nop(),
	}
}

// Option configures a Service at construction time.
type Option func(*config) error

// WithEntries sets the submission-queue depth (default DefaultEntries).
func WithEntries(entries uint32) Option {
	return func(c *config) error {
		if entries == 0 {
			return &OpError{Action: "configure", Err: ErrInvalidEntries}
		}
		c.entries = entries
		return nil
	}
}

// WithSetupFlags forwards flags to io_uring_setup unchanged (e.g.
// IORING_SETUP_SQPOLL, IORING_SETUP_SINGLE_ISSUER).
func WithSetupFlags(flags uint32) Option {
	return func(c *config) error {
		c.setupFlags = flags
		return nil
	}
}

// WithSQThreadCPU pins the kernel-side SQ poll thread to a CPU. Only
// meaningful combined with an SQPOLL setup flag.
func WithSQThreadCPU(cpu uint32) Option {
	return func(c *config) error {
		c.sqThreadCPU = cpu
		return nil
	}
}

// WithSQThreadIdle sets, in milliseconds, how long the kernel-side SQ poll
// thread idles before sleeping. Only meaningful combined with an SQPOLL
// setup flag.
func WithSQThreadIdle(ms uint32) Option {
	return func(c *config) error {
		c.sqThreadIdle = ms
		return nil
	}
}

// WithLogger attaches a structured logger for setup, registration, and
// contract-violation diagnostics. The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithDebugAbort controls whether a captured stack trace is logged before
// a contract-violation panic. The panic itself always happens; this only
// controls whether diagnostics are printed first.
func WithDebugAbort(enabled bool) Option {
	return func(c *config) error {
		c.debugAbort = enabled
		return nil
	}
}
