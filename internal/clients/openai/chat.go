// Package openai wraps the OpenAI-compatible APIs used for chat (OpenRouter)
// and for Whisper transcription.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"

	"karma-server/internal/ai"
	"karma-server/internal/observability"
)

const (
	DefaultOpenRouterURL = "https://openrouter.ai/api/v1"
	DefaultModel         = "openai/gpt-oss-120b"
	defaultMaxTokens     = 2000
)

// ChatClient streams chat completions from an OpenAI-compatible endpoint.
type ChatClient struct {
	client    openai.Client
	model     string
	maxTokens int64
	logger    *observability.Logger
}

// NewOpenRouterClient routes requests through OpenRouter, preferring Groq.
func NewOpenRouterClient(apiKey, baseURL, model string, logger *observability.Logger, opts ...option.RequestOption) (*ChatClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenRouter API key is required")
	}
	if baseURL == "" {
		baseURL = DefaultOpenRouterURL
	}
	if model == "" {
		model = DefaultModel
	}

	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithJSONSet("provider", map[string]any{
			"order":           []string{"Groq"},
			"allow_fallbacks": true,
		}),
	}
	options = append(options, opts...)

	return &ChatClient{
		client:    openai.NewClient(options...),
		model:     model,
		maxTokens: defaultMaxTokens,
		logger:    logger,
	}, nil
}

func (c *ChatClient) params(history []ai.Message, temperature float64) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    toMessages(history),
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(temperature),
	}
}

// ChatStream starts a streaming completion.
func (c *ChatClient) ChatStream(ctx context.Context, history []ai.Message, temperature float64) (ai.TokenStream, error) {
	stream := c.client.Chat.Completions.NewStreaming(ctx, c.params(history, temperature))
	if err := stream.Err(); err != nil {
		_ = stream.Close()
		return nil, fmt.Errorf("failed to start chat stream: %w", err)
	}
	return &tokenStream{stream: stream}, nil
}

// Complete returns the whole completion at once.
func (c *ChatClient) Complete(ctx context.Context, history []ai.Message, temperature float64) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, c.params(history, temperature))
	if err != nil {
		return "", fmt.Errorf("failed to complete chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	c.logger.Metrics(ctx,
		observability.MetricField{Key: "llm_model", Value: c.model},
		observability.MetricField{Key: "llm_total_tokens", Value: resp.Usage.TotalTokens},
	)
	return resp.Choices[0].Message.Content, nil
}

func toMessages(history []ai.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case ai.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case ai.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

type tokenStream struct {
	stream *ssestream.Stream[openai.ChatCompletionChunk]
	token  string
}

func (s *tokenStream) Next() bool {
	for s.stream.Next() {
		chunk := s.stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		if content := chunk.Choices[0].Delta.Content; content != "" {
			s.token = content
			return true
		}
	}
	return false
}

func (s *tokenStream) Token() string { return s.token }
func (s *tokenStream) Err() error    { return s.stream.Err() }
func (s *tokenStream) Close() error  { return s.stream.Close() }
