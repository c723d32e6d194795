//go:build linux

package ioservice

// RegisterFiles pins a fixed table of file descriptors with the kernel so
// later operations can reference them by index instead of raw fd, avoiding
// a per-submission fdget/fdput. Grounded on
// vlourme-rio/pkg/liburing/ring_register.go's RegisterFiles, which wraps
// the identical giouring call.
func (s *Service) RegisterFiles(files []int) error {
	if _, err := s.ring.RegisterFiles(files); err != nil {
		s.logSetupFailure("register_files", err)
		return newSetupError("register_files", err)
	}
	s.registeredFiles = true
	s.logRegistration("register_files", len(files))
	return nil
}

// UpdateRegisteredFiles replaces a slice of the registered file table
// starting at off, without tearing down the whole table.
func (s *Service) UpdateRegisteredFiles(off uint, files []int) error {
	if !s.registeredFiles {
		s.logSetupFailure("update_registered_files", ErrNotRegistered)
		return newSetupError("update_registered_files", ErrNotRegistered)
	}
	if _, err := s.ring.RegisterFilesUpdate(off, files); err != nil {
		s.logSetupFailure("update_registered_files", err)
		return newSetupError("update_registered_files", err)
	}
	s.logRegistration("update_registered_files", len(files))
	return nil
}

// UnregisterFiles tears down the fixed file table.
func (s *Service) UnregisterFiles() error {
	if _, err := s.ring.UnregisterFiles(); err != nil {
		s.logSetupFailure("unregister_files", err)
		return newSetupError("unregister_files", err)
	}
	s.registeredFiles = false
	s.logRegistration("unregister_files", 0)
	return nil
}

// RegisterBuffers pins a fixed set of buffers for use with ReadFixed and
// WriteFixed, letting the kernel skip the per-I/O page pin/unpin.
func (s *Service) RegisterBuffers(buffers [][]byte) error {
	iovecs := toIovecs(buffers)
	if _, err := s.ring.RegisterBuffers(iovecs); err != nil {
		s.logSetupFailure("register_buffers", err)
		return newSetupError("register_buffers", err)
	}
	s.registeredBuffers = true
	s.logRegistration("register_buffers", len(buffers))
	return nil
}

// UnregisterBuffers tears down the fixed buffer table.
func (s *Service) UnregisterBuffers() error {
	if _, err := s.ring.UnregisterBuffers(); err != nil {
		s.logSetupFailure("unregister_buffers", err)
		return newSetupError("unregister_buffers", err)
	}
	s.registeredBuffers = false
	s.logRegistration("unregister_buffers", 0)
	return nil
}
