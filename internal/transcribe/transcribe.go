// Package transcribe wraps the OpenAI-compatible speech-to-text API
// (Groq-hosted Whisper by default).
package transcribe

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Transcriber converts an audio file to text. Implementations may be slow;
// callers pass a context with whatever deadline they can tolerate.
type Transcriber interface {
	Transcribe(ctx context.Context, path, language string) (string, error)
}

// Client is the Whisper-API transcriber.
type Client struct {
	client openai.Client
	model  string
}

// Opts holds parameters for creating a Client.
type Opts struct {
	BaseURL string
	APIKey  string
	Model   string
}

// New creates a transcription client.
func New(opts Opts) (*Client, error) {
	if opts.Model == "" {
		return nil, fmt.Errorf("transcribe: model is required")
	}
	reqOpts := []option.RequestOption{}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.APIKey != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(opts.APIKey))
	}
	return &Client{client: openai.NewClient(reqOpts...), model: opts.Model}, nil
}

// Transcribe uploads the audio file and returns the recognized text,
// whitespace-trimmed.
func (c *Client) Transcribe(ctx context.Context, path, language string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("transcribe: open %s: %w", path, err)
	}
	defer f.Close()

	resp, err := c.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model:    c.model,
		File:     f,
		Language: openai.String(language),
	})
	if err != nil {
		return "", fmt.Errorf("transcribe: %s: %w", path, err)
	}
	return strings.TrimSpace(resp.Text), nil
}
