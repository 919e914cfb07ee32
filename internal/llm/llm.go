package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for SEO insight generation.
type Client interface {
	GenerateInsights(ctx context.Context, input GenerateInput) (json.RawMessage, error)
}

// GenerateInput captures the inputs needed for an insights request.
type GenerateInput struct {
	SiteURL         string
	MetricsJSON     string
	BusinessProfile string
	PromptVersion   string
}

type fixJSONKey struct{}

// WithFixJSON returns a context signaling a fix-JSON retry with the given raw output.
func WithFixJSON(ctx context.Context, raw string) context.Context {
	return context.WithValue(ctx, fixJSONKey{}, raw)
}

// FixJSONFromContext returns the raw JSON to repair, if any.
func FixJSONFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(fixJSONKey{})
	raw, ok := val.(string)
	return raw, ok
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// GenerateInsights returns ErrNotImplemented.
func (PlaceholderClient) GenerateInsights(ctx context.Context, input GenerateInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotImplemented
}
