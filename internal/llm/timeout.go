package llm

import (
	"context"
	"errors"
	"time"
)

type timeoutClient struct {
	next Client
	d    time.Duration
}

// WithTimeout bounds every SendChat on c by d. A call that runs out of time
// fails with a *NetworkError whose Timeout field is set. d <= 0 returns c.
func WithTimeout(c Client, d time.Duration) Client {
	if d <= 0 {
		return c
	}
	return &timeoutClient{next: c, d: d}
}

func (t *timeoutClient) SendChat(ctx context.Context, req Request) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()

	resp, err := t.next.SendChat(ctx, req)
	if err == nil {
		return resp, nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		var ne *NetworkError
		if errors.As(err, &ne) {
			ne.Timeout = true
			return resp, ne
		}
		return resp, &NetworkError{Op: "chat", Timeout: true, Err: err}
	}
	return resp, err
}
