package oerror

import "fmt"

// ParkourError is returned (or panicked with) when an operation hits a condition the caller cannot
// recover from by retrying.
type ParkourError struct {
	Err string
}

// New returns a new ParkourError with a formatted message.
func New(format string, args ...any) *ParkourError {
	if len(args) == 0 {
		return &ParkourError{Err: format}
	}
	return &ParkourError{Err: fmt.Sprintf(format, args...)}
}

func (e *ParkourError) Error() string {
	return e.Err
}
