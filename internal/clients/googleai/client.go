// Package googleai serves chat completions from Gemini.
package googleai

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"google.golang.org/genai"

	"karma-server/internal/ai"
	"karma-server/internal/observability"
)

const (
	DefaultModel     = "gemini-2.5-flash"
	defaultMaxTokens = 2000
)

// ChatClient implements ai.ChatClient over the Gemini API.
type ChatClient struct {
	client *genai.Client
	model  string
	logger *observability.Logger
}

func NewChatClient(ctx context.Context, apiKey, model string, logger *observability.Logger) (*ChatClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Google AI API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}

	return &ChatClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// ChatStream streams a reply to history.
func (c *ChatClient) ChatStream(ctx context.Context, history []ai.Message, temperature float64) (ai.TokenStream, error) {
	contents, cfg := toContents(history, temperature)
	if len(contents) == 0 {
		return nil, fmt.Errorf("chat history has no user or model turns")
	}
	return newTokenStream(c.client.Models.GenerateContentStream(ctx, c.model, contents, cfg)), nil
}

// Complete returns the whole reply at once.
func (c *ChatClient) Complete(ctx context.Context, history []ai.Message, temperature float64) (string, error) {
	contents, cfg := toContents(history, temperature)
	if len(contents) == 0 {
		return "", fmt.Errorf("chat history has no user or model turns")
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned no text")
	}
	return text, nil
}

// toContents splits out system messages into the system instruction.
func toContents(history []ai.Message, temperature float64) ([]*genai.Content, *genai.GenerateContentConfig) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(temperature)),
		MaxOutputTokens: defaultMaxTokens,
	}

	var system []string
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case ai.RoleSystem:
			system = append(system, m.Content)
		case ai.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	if len(system) > 0 {
		cfg.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}
	return contents, cfg
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && !p.Thought {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// tokenStream adapts the SDK's push iterator to ai.TokenStream.
type tokenStream struct {
	next  func() (*genai.GenerateContentResponse, error, bool)
	stop  func()
	token string
	err   error
}

func newTokenStream(seq iter.Seq2[*genai.GenerateContentResponse, error]) *tokenStream {
	next, stop := iter.Pull2(seq)
	return &tokenStream{next: next, stop: stop}
}

func (s *tokenStream) Next() bool {
	for {
		resp, err, ok := s.next()
		if !ok {
			return false
		}
		if err != nil {
			s.err = err
			s.stop()
			return false
		}
		if text := responseText(resp); text != "" {
			s.token = text
			return true
		}
	}
}

func (s *tokenStream) Token() string { return s.token }
func (s *tokenStream) Err() error    { return s.err }

func (s *tokenStream) Close() error {
	s.stop()
	return nil
}
