package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClientInterface completes a conversation with a hosted model.
type ChatClientInterface interface {
	Provider() string
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

// EmbeddingClientInterface turns text into a 1536-dimension vector.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

type LLMOptions struct {
	Provider       string
	APIKey         string
	ChatModel      string
	EmbeddingModel string
	MaxTokens      int
	Temperature    float32
}

// NewLLMClients builds the chat and embedding clients for a provider.
// Both are nil when no API key is configured.
func NewLLMClients(ctx context.Context, opts LLMOptions) (ChatClientInterface, EmbeddingClientInterface, error) {
	if opts.APIKey == "" {
		return nil, nil, nil
	}
	switch strings.ToLower(opts.Provider) {
	case "openai":
		c := NewOpenAIClient(opts)
		return c, c, nil
	case "gemini":
		c, err := NewGeminiClient(ctx, opts)
		if err != nil {
			return nil, nil, err
		}
		return c, c, nil
	default:
		return nil, nil, fmt.Errorf("unsupported llm provider: %s. Use 'openai' or 'gemini'", opts.Provider)
	}
}
