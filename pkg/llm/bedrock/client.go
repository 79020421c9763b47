// Package bedrock provides an llm.Client backed by Anthropic models on AWS
// Bedrock, using the InvokeModel messages API.
package bedrock

import (
	"context"
	"encoding/json"
	"strings"

	"smartdomain/pkg/llm"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/go-faster/errors"
)

const (
	// DefaultModel is used when no model id is configured.
	DefaultModel = "anthropic.claude-3-haiku-20240307-v1:0"
	// DefaultRegion is used when no region is configured.
	DefaultRegion = "us-east-1"

	anthropicVersion = "bedrock-2023-05-31"
	defaultMaxTokens = 1024
)

// InvokeModelAPI is the subset of the Bedrock runtime client used here.
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context,
		params *bedrockruntime.InvokeModelInput,
		optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type request struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	System           string    `json:"system,omitempty"`
	Messages         []message `json:"messages"`
	Temperature      float64   `json:"temperature"`
}

type response struct {
	Content []contentBlock `json:"content"`
}

// Client talks to Bedrock. It is safe for concurrent use.
type Client struct {
	api     InvokeModelAPI
	modelID string
}

// Ensure Client conforms to the llm.Client interface at compile time.
var _ llm.Client = (*Client)(nil)

// New loads the default AWS credential chain for region and returns a client.
func New(ctx context.Context, region, modelID string) (*Client, error) {
	if region == "" {
		region = DefaultRegion
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	return NewWithAPI(bedrockruntime.NewFromConfig(cfg), modelID), nil
}

// NewWithAPI builds a client on an existing runtime API implementation.
func NewWithAPI(api InvokeModelAPI, modelID string) *Client {
	if modelID == "" {
		modelID = DefaultModel
	}

	return &Client{api: api, modelID: modelID}
}

// Complete implements llm.Client. Bedrock has no JSON response mode for these
// models, so JSON prompts get an extra instruction instead.
func (c *Client) Complete(ctx context.Context, p llm.Prompt) (string, error) {
	maxTokens := p.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	system := p.System
	if p.JSON {
		system = strings.TrimSpace(system + "\nRespond with a single valid JSON document and nothing else.")
	}

	body, err := json.Marshal(request{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		System:           system,
		Messages: []message{{
			Role:    "user",
			Content: []contentBlock{{Type: "text", Text: p.User}},
		}},
		Temperature: p.Temperature,
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal bedrock request")
	}

	out, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", errors.Wrap(err, "invoke bedrock model")
	}

	var resp response
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", errors.Wrap(err, "decode bedrock response")
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", llm.ErrEmptyResponse
	}

	return sb.String(), nil
}
