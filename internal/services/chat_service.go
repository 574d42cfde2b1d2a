package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"youngeru/internal/metrics"
	"youngeru/internal/models/request_models"
	"youngeru/internal/models/response_models"
	"youngeru/pkg/utils"
)

const SystemPrompt = `You are YoungerU's AI health assistant, specializing in evidence-based supplement guidance for adults 35-55.

Your role:
- Provide personalized, science-backed supplement recommendations
- Help users understand supplement timing, dosing, and interactions
- Focus on energy, focus, and recovery optimization
- Always emphasize that this is educational guidance, not medical advice
- Recommend consulting healthcare providers for medical conditions

Guidelines:
- Keep responses concise and actionable
- Use evidence grades (A/B/C) when discussing supplement research
- Avoid recommending specific brands
- Focus on lifestyle integration and practical advice
- Be encouraging but realistic about timelines

Always include this disclaimer: "This is educational guidance, not medical advice. Consult your healthcare provider before starting new supplements."`

type ChatServiceInterface interface {
	Chat(ctx context.Context, request request_models.ChatRequest) (*response_models.ChatResponse, error)
}

type ChatService struct {
	client  utils.ChatClientInterface
	metrics *metrics.Metrics
	log     *zap.Logger
	now     func() time.Time
}

// NewChatService accepts a nil client; Chat then fails with
// utils.ErrChatUnavailable.
func NewChatService(client utils.ChatClientInterface, m *metrics.Metrics, log *zap.Logger) ChatServiceInterface {
	return &ChatService{client: client, metrics: m, log: log, now: time.Now}
}

func (c *ChatService) Chat(ctx context.Context, request request_models.ChatRequest) (*response_models.ChatResponse, error) {
	if len(request.Messages) == 0 {
		return nil, fmt.Errorf("%w: messages array is required", utils.ErrInvalidInput)
	}
	if c.client == nil {
		c.metrics.ChatRequests.WithLabelValues("none", "unavailable").Inc()
		return nil, utils.ErrChatUnavailable
	}
	provider := c.client.Provider()

	messages := make([]utils.ChatMessage, 0, len(request.Messages)+1)
	messages = append(messages, utils.ChatMessage{Role: utils.RoleSystem, Content: BuildSystemPrompt(request.Context)})
	for _, m := range request.Messages {
		messages = append(messages, utils.ChatMessage{Role: m.Role, Content: m.Content})
	}

	reply, err := c.client.Complete(ctx, messages)
	if err != nil {
		c.metrics.ChatRequests.WithLabelValues(provider, "error").Inc()
		c.log.Error("chat completion", zap.String("provider", provider), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrChatFailed, err)
	}
	if strings.TrimSpace(reply) == "" {
		c.metrics.ChatRequests.WithLabelValues(provider, "empty").Inc()
		return nil, utils.ErrEmptyCompletion
	}
	c.metrics.ChatRequests.WithLabelValues(provider, "ok").Inc()

	resp := &response_models.ChatResponse{Message: reply}
	if request.UserID != "" {
		resp.ConversationID = fmt.Sprintf("conv_%s_%d", request.UserID, c.now().UnixMilli())
	}
	return resp, nil
}

// BuildSystemPrompt appends a "User Context" block for the fields that
// are set.
func BuildSystemPrompt(ctx *request_models.ChatContext) string {
	if ctx == nil {
		return SystemPrompt
	}
	var b strings.Builder
	b.WriteString(SystemPrompt)
	b.WriteString("\n\nUser Context:")
	if ctx.Age > 0 {
		fmt.Fprintf(&b, "\n- Age: %d", ctx.Age)
	}
	if len(ctx.Goals) > 0 {
		fmt.Fprintf(&b, "\n- Goals: %s", strings.Join(ctx.Goals, ", "))
	}
	if ctx.Lifestyle != "" {
		fmt.Fprintf(&b, "\n- Lifestyle: %s", ctx.Lifestyle)
	}
	return b.String()
}
