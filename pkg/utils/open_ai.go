package utils

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements ChatClientInterface and EmbeddingClientInterface.
type OpenAIClient struct {
	client         *openai.Client
	chatModel      string
	embeddingModel string
	maxTokens      int
	temperature    float32
}

func NewOpenAIClient(opts LLMOptions) *OpenAIClient {
	return &OpenAIClient{
		client:         openai.NewClient(opts.APIKey),
		chatModel:      opts.ChatModel,
		embeddingModel: opts.EmbeddingModel,
		maxTokens:      opts.MaxTokens,
		temperature:    opts.Temperature,
	}
}

func (c *OpenAIClient) Provider() string { return "openai" }

func (c *OpenAIClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:            c.chatModel,
		MaxTokens:        c.maxTokens,
		Temperature:      c.temperature,
		PresencePenalty:  0.1,
		FrequencyPenalty: 0.1,
		Messages:         make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.embeddingModel),
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
