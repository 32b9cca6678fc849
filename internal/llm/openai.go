package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// openAIClient speaks the chat/completions dialect. Duration is wall-clock
// time since the request started; the server does not report one.
type openAIClient struct {
	base   string
	model  string
	apiKey string
	http   *http.Client
}

func (c *openAIClient) SendChat(ctx context.Context, req Request) (Response, error) {
	model := coalesce(req.Model, c.model)
	payload := map[string]any{
		"model":           model,
		"messages":        req.Messages,
		"stream":          false,
		"response_format": map[string]any{"type": "json_object"},
	}
	if req.Temperature != nil {
		payload["temperature"] = *req.Temperature
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Response{}, err
	}

	url := c.base + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return Response{}, &NetworkError{Op: "post " + url, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

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

	var cc struct {
		Choices []struct {
			Message Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &cc); err != nil {
		return Response{}, &ParseError{Body: string(body), Err: err}
	}
	if len(cc.Choices) == 0 {
		return Response{}, &ParseError{Body: string(body), Err: errors.New("no choices returned")}
	}
	d := time.Since(start)
	log.Debug().Str("provider", string(ProviderOpenAI)).Str("model", model).Dur("took", d).Msg("chat")
	return Response{Message: cc.Choices[0].Message, Duration: d}, nil
}
