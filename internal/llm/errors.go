package llm

import (
	"context"
	"errors"
	"fmt"
)

// NetworkError reports an unreachable endpoint, a non-2xx status, or a
// request that ran past its deadline.
type NetworkError struct {
	Op         string
	StatusCode int // 0 when no response arrived
	Timeout    bool
	Body       string
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("llm %s: request timed out: %v", e.Op, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("llm %s: http %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("llm %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a response body or message content that is not the
// expected JSON.
type ParseError struct {
	Body string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("llm: unparseable response: %v (body: %s)", e.Err, truncate(e.Body, 200))
}

func (e *ParseError) Unwrap() error { return e.Err }

// transportError classifies a failed http.Client.Do.
func transportError(ctx context.Context, op string, err error) error {
	timeout := errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
	return &NetworkError{Op: op, Timeout: timeout, Err: err}
}
