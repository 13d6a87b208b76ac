package domain

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	m "capres.dev/pkg/capres/internal/model"
)

// ProbeError reports an unexpected filesystem failure while probing. It means
// the build environment is misconfigured, as opposed to an artifact simply
// being absent.
type ProbeError struct {
	Path m.Path
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s: %v", e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// ScanError reports a failure while walking or reading a third-party tree.
type ScanError struct {
	Path m.Path
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// ErrInvalidJob is returned by the stager for jobs it cannot act on at all.
var ErrInvalidJob = errors.New("invalid staging job")

// ErrDestinationNotRegular marks a staging target occupied by something other
// than a regular file.
var ErrDestinationNotRegular = errors.New("destination exists and is not a regular file")

// isFilesystemError reports whether err belongs to the I/O and permission
// failure classes that staging suppresses. Anything else is returned to the
// caller.
func isFilesystemError(err error) bool {
	var (
		pathErr    *fs.PathError
		linkErr    *os.LinkError
		syscallErr *os.SyscallError
	)

	switch {
	case errors.As(err, &pathErr), errors.As(err, &linkErr), errors.As(err, &syscallErr):
		return true
	case errors.Is(err, fs.ErrPermission), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrExist):
		return true
	case errors.Is(err, io.ErrShortWrite), errors.Is(err, io.ErrUnexpectedEOF):
		return true
	}

	return false
}
