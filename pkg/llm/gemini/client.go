// Package gemini provides an llm.Client backed by the Google Gemini API.
package gemini

import (
	"context"
	"strings"

	"smartdomain/pkg/llm"

	"github.com/go-faster/errors"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.0-flash"

// Client talks to Gemini. It is safe for concurrent use.
type Client struct {
	client *genai.Client
	model  string
}

// Ensure Client conforms to the llm.Client interface at compile time.
var _ llm.Client = (*Client)(nil)

// New creates a Gemini client authenticated with apiKey.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}
	if model == "" {
		model = DefaultModel
	}

	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}

	return &Client{client: c, model: model}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if err := c.client.Close(); err != nil {
		return errors.Wrap(err, "close gemini client")
	}

	return nil
}

// Complete implements llm.Client. A model handle is created per call since
// generation settings differ between prompts.
func (c *Client) Complete(ctx context.Context, p llm.Prompt) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(float32(p.Temperature))
	if p.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(p.MaxTokens)) //nolint: gosec
	}
	if p.JSON {
		model.ResponseMIMEType = "application/json"
	}
	if p.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(p.System)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(p.User))
	if err != nil {
		return "", errors.Wrap(err, "generate content")
	}

	return ResponseText(resp)
}

// ResponseText concatenates the text parts of the first candidate.
func ResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", llm.ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", llm.ErrEmptyResponse
	}

	return sb.String(), nil
}
