//go:build linux

package ioservice

import (
	"fmt"

	"github.com/rs/zerolog"
)

// logSetupFailure, logRegistration, logSQFlush and logContractViolation
// are the only points the runtime touches its logger from; everything
// else stays silent by default (zerolog.Nop()), matching the near-silent
// teacher runtime. See SPEC_FULL.md's "Logging" ambient-stack section.
//
// logSetupFailure is also callable before a Service exists (New logs a
// queue_init failure before it has anything to hang a method off of), so
// the logic lives in a free function and the method is a thin wrapper.

func logSetupFailure(logger zerolog.Logger, action string, err error) {
	logger.Warn().Err(err).Str("action", action).Msg("ioservice: setup failed")
}

func (s *Service) logSetupFailure(action string, err error) {
	logSetupFailure(s.cfg.logger, action, err)
}

func (s *Service) logRegistration(action string, count int) {
	s.cfg.logger.Debug().Str("action", action).Int("count", count).Msg("ioservice: registration")
}

func (s *Service) logSQFlush(flushed uint32) {
	s.cfg.logger.Debug().Uint32("flushed", flushed).Msg("ioservice: submission queue full, flushed pending completions")
}

// logContractViolation logs err (built with a captured stack trace via
// github.com/brickingsoft/errors) before isContractViolation panics with it,
// when the Service was configured with WithDebugAbort(true).
func (s *Service) logContractViolation(err error) {
	s.cfg.logger.Error().Str("stack", fmt.Sprintf("%+v", err)).Msg("ioservice: contract violation, aborting")
}
