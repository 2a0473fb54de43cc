// Package llm wraps the OpenAI-compatible chat-completion API used for
// freeform utterances. The default deployment points it at Groq.
package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/solvelysaid/orderdesk/internal/chat"
)

// Client calls a chat-completion endpoint. It implements chat.LLMClient.
type Client struct {
	client      openai.Client
	model       string
	temperature float64
}

// Opts holds parameters for creating a Client.
type Opts struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
}

// New creates a completion client.
func New(opts Opts) (*Client, error) {
	if opts.Model == "" {
		return nil, fmt.Errorf("llm: model is required")
	}
	reqOpts := []option.RequestOption{}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.APIKey != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(opts.APIKey))
	}
	return &Client{
		client:      openai.NewClient(reqOpts...),
		model:       opts.Model,
		temperature: opts.Temperature,
	}, nil
}

// Complete sends the transcript and returns the first choice's content.
// A response with no choices is reported as an empty reply with a nil
// error — the caller decides how to phrase "no response".
func (c *Client) Complete(ctx context.Context, transcript []chat.Turn) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    toMessageParams(transcript),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("llm: completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// toMessageParams converts transcript turns to API message parameters.
func toMessageParams(transcript []chat.Turn) []openai.ChatCompletionMessageParamUnion {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(transcript))
	for _, t := range transcript {
		switch t.Role {
		case chat.RoleSystem:
			msgs = append(msgs, openai.SystemMessage(t.Content))
		case chat.RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(t.Content))
		default:
			msgs = append(msgs, openai.UserMessage(t.Content))
		}
	}
	return msgs
}
