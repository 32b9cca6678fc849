package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// ollamaClient speaks the local-server dialect: POST {base}/api/chat, with the
// message and server-reported total_duration at the top level of the reply.
type ollamaClient struct {
	base  string
	model string
	http  *http.Client
}

type ollamaRequest struct {
	Model    string         `json:"model"`
	Messages []Message      `json:"messages"`
	Format   string         `json:"format"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

type ollamaResponse struct {
	Message       *Message `json:"message"`
	TotalDuration int64    `json:"total_duration"` // nanoseconds
}

func (c *ollamaClient) SendChat(ctx context.Context, req Request) (Response, error) {
	payload := ollamaRequest{
		Model:    coalesce(req.Model, c.model),
		Messages: req.Messages,
		Format:   "json",
		Stream:   false,
	}
	if req.Temperature != nil {
		payload.Options = map[string]any{"temperature": *req.Temperature}
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Response{}, err
	}

	url := c.base + "/api/chat"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return Response{}, &NetworkError{Op: "post " + url, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Response{}, transportError(ctx, "post "+url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, transportError(ctx, "read "+url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, &NetworkError{Op: "post " + url, StatusCode: resp.StatusCode, Body: truncate(string(body), 800)}
	}

	var out ollamaResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return Response{}, &ParseError{Body: string(body), Err: err}
	}
	if out.Message == nil {
		return Response{}, &ParseError{Body: string(body), Err: fmt.Errorf("missing message")}
	}
	d := time.Duration(out.TotalDuration)
	if d <= 0 {
		d = time.Since(start)
	}
	log.Debug().Str("provider", string(ProviderOllama)).Str("model", payload.Model).Dur("took", d).Msg("chat")
	return Response{Message: *out.Message, Duration: d}, nil
}

func coalesce(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
