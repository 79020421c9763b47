// Package llm defines the completion client used by the naming pipeline.
// Providers live in sub-packages (gemini, bedrock).
package llm

import (
	"context"
	"smartdomain/pkg/serrors"

	"github.com/go-faster/errors"
)

// ErrEmptyResponse is returned when the provider answered without any text.
var ErrEmptyResponse = errors.New("llm returned an empty response")

// Prompt is a single-turn completion request.
type Prompt struct {
	// System is the instruction given to the model.
	System string
	// User is the user turn.
	User string
	// Temperature controls sampling randomness.
	Temperature float64
	// MaxTokens caps the response length.
	MaxTokens int
	// JSON asks the provider to answer with a JSON document.
	JSON bool
}

// Client produces a text completion for a prompt.
//
//go:generate mockgen -package mockllm -source=interface.go -destination=mock/mockllm.go *
type Client interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}

// Unconfigured stands in when no provider could be created. Every completion
// fails as UNAVAILABLE.
type Unconfigured struct {
	Cause error
}

// Complete implements Client.
func (u Unconfigured) Complete(context.Context, Prompt) (string, error) {
	return "", serrors.Wrap(serrors.ErrUnavailable, u.Cause, "language model is not configured")
}
