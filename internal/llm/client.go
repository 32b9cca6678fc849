package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Role of a chat message author.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is a single non-streaming chat completion call. Responses are
// always requested in JSON mode.
type Request struct {
	Model       string
	Messages    []Message
	Temperature *float64
}

// Response carries the assistant message and how long generation took.
type Response struct {
	Message  Message
	Duration time.Duration
}

// Client sends chat requests to a language model.
type Client interface {
	SendChat(ctx context.Context, req Request) (Response, error)
}

// Provider names a wire dialect.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderOpenAI Provider = "openai"
)

// Providers lists the supported dialects.
var Providers = []Provider{ProviderOllama, ProviderOpenAI}

// ParseProvider validates a provider name.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range Providers {
		if k == p {
			return p, nil
		}
	}
	names := make([]string, len(Providers))
	for i, k := range Providers {
		names[i] = string(k)
	}
	return "", fmt.Errorf("unrecognized provider: %s. Must be one of [%s]", s, strings.Join(names, ", "))
}

// Options configures New.
type Options struct {
	Provider   Provider
	BaseURL    string
	Model      string // used when a Request leaves Model empty
	APIKey     string // sent as a bearer token by the openai dialect when set
	HTTPClient *http.Client
}

// New returns a Client for opts.Provider.
func New(opts Options) (Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("llm: base URL missing")
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	switch opts.Provider {
	case ProviderOllama:
		return &ollamaClient{base: base, model: opts.Model, http: hc}, nil
	case ProviderOpenAI:
		return &openAIClient{base: base, model: opts.Model, apiKey: strings.TrimSpace(opts.APIKey), http: hc}, nil
	}
	_, err := ParseProvider(string(opts.Provider))
	return nil, err
}

// Decode unmarshals the assistant's JSON content into v.
func Decode(resp Response, v any) error {
	raw := strings.TrimSpace(resp.Message.Content)
	if raw == "" {
		return &ParseError{Body: raw, Err: errors.New("empty response")}
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return &ParseError{Body: raw, Err: err}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
