package utils

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

const embeddingDimensions = 1536

// GeminiClient implements ChatClientInterface using Google's Gemini models.
type GeminiClient struct {
	client      *genai.Client
	model       string
	maxTokens   int32
	temperature float32
}

func NewGeminiClient(ctx context.Context, opts LLMOptions) (*GeminiClient, error) {
	model := opts.ChatModel
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{
		client:      client,
		model:       model,
		maxTokens:   int32(opts.MaxTokens),
		temperature: opts.Temperature,
	}, nil
}

func (c *GeminiClient) Provider() string { return "gemini" }

// Complete maps system messages onto the system instruction and replays
// the rest as chat history; the final message must come from the user.
func (c *GeminiClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	var system []string
	var turns []ChatMessage
	for _, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		turns = append(turns, m)
	}
	if len(turns) == 0 || turns[len(turns)-1].Role != RoleUser {
		return "", fmt.Errorf("gemini: conversation must end with a user message")
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)
	if c.maxTokens > 0 {
		model.SetMaxOutputTokens(c.maxTokens)
	}
	if len(system) > 0 {
		model.SystemInstruction = genai.NewUserContent(genai.Text(strings.Join(system, "\n\n")))
	}

	cs := model.StartChat()
	for _, m := range turns[:len(turns)-1] {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(turns[len(turns)-1].Content))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return out.String(), nil
}

// GetEmbedding hashes words into a normalized vector. Gemini's free tier
// has no 1536-dimension embedding model, so similarity is lexical only.
func (c *GeminiClient) GetEmbedding(_ context.Context, text string) (pgvector.Vector, error) {
	return HashEmbedding(text), nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// HashEmbedding spreads each word's hash across every dimension and
// normalizes the result to unit length.
func HashEmbedding(text string) pgvector.Vector {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	vector := make([]float32, embeddingDimensions)

	for _, word := range words {
		h := fnv.New32a()
		_, _ = h.Write([]byte(word))
		hash := h.Sum32()
		for i := range vector {
			vector[i] += float32(math.Sin(float64(hash+uint32(i))) * 0.1)
		}
	}

	var magnitude float64
	for _, v := range vector {
		magnitude += float64(v * v)
	}
	magnitude = math.Sqrt(magnitude)
	if magnitude > 0 {
		for i := range vector {
			vector[i] = float32(float64(vector[i]) / magnitude)
		}
	}
	return pgvector.NewVector(vector)
}
