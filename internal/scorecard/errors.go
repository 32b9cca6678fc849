package scorecard

import "fmt"

// ReadError reports a scoresheet that exists but cannot be read or parsed.
// A missing scoresheet is not an error.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("scorecard: read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a scoresheet that could not be saved.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("scorecard: write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
