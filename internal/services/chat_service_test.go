package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"youngeru/internal/metrics"
	"youngeru/internal/models/request_models"
	"youngeru/pkg/utils"
)

func TestBuildSystemPrompt(t *testing.T) {
	assert.Equal(t, SystemPrompt, BuildSystemPrompt(nil))

	got := BuildSystemPrompt(&request_models.ChatContext{
		Age:       42,
		Goals:     []string{"energy", "sleep"},
		Lifestyle: "desk job",
	})
	assert.True(t, strings.HasPrefix(got, SystemPrompt))
	assert.Equal(t, "\n\nUser Context:\n- Age: 42\n- Goals: energy, sleep\n- Lifestyle: desk job", strings.TrimPrefix(got, SystemPrompt))

	partial := BuildSystemPrompt(&request_models.ChatContext{Lifestyle: "runner"})
	assert.NotContains(t, partial, "- Age:")
	assert.Contains(t, partial, "- Lifestyle: runner")
}

func newChatService(client utils.ChatClientInterface) (*ChatService, *metrics.Metrics) {
	m := metrics.New()
	svc := NewChatService(client, m, zap.NewNop()).(*ChatService)
	svc.now = func() time.Time { return time.UnixMilli(1700000000123) }
	return svc, m
}

func TestChat(t *testing.T) {
	client := &fakeChat{reply: "Try magnesium in the evening."}
	svc, m := newChatService(client)

	resp, err := svc.Chat(context.Background(), request_models.ChatRequest{
		Messages: []request_models.ChatMessage{{Role: "user", Content: "How do I sleep better?"}},
		UserID:   "u1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Try magnesium in the evening.", resp.Message)
	assert.Equal(t, "conv_u1_1700000000123", resp.ConversationID)
	require.Len(t, client.messages, 2)
	assert.Equal(t, utils.RoleSystem, client.messages[0].Role)
	assert.Equal(t, SystemPrompt, client.messages[0].Content)
	assert.Equal(t, "How do I sleep better?", client.messages[1].Content)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChatRequests.WithLabelValues("fake", "ok")))
}

func TestChatWithoutUserHasNoConversation(t *testing.T) {
	svc, _ := newChatService(&fakeChat{reply: "hi"})

	resp, err := svc.Chat(context.Background(), request_models.ChatRequest{
		Messages: []request_models.ChatMessage{{Role: "user", Content: "hello"}},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.ConversationID)
}

func TestChatErrors(t *testing.T) {
	msgs := []request_models.ChatMessage{{Role: "user", Content: "hello"}}

	t.Run("no messages", func(t *testing.T) {
		svc, _ := newChatService(&fakeChat{reply: "hi"})
		_, err := svc.Chat(context.Background(), request_models.ChatRequest{})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("no provider configured", func(t *testing.T) {
		svc, _ := newChatService(nil)
		_, err := svc.Chat(context.Background(), request_models.ChatRequest{Messages: msgs})
		assert.ErrorIs(t, err, utils.ErrChatUnavailable)
	})

	t.Run("provider error", func(t *testing.T) {
		svc, m := newChatService(&fakeChat{err: errBoom})
		_, err := svc.Chat(context.Background(), request_models.ChatRequest{Messages: msgs})
		assert.ErrorIs(t, err, utils.ErrChatFailed)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ChatRequests.WithLabelValues("fake", "error")))
	})

	t.Run("blank reply", func(t *testing.T) {
		svc, _ := newChatService(&fakeChat{reply: "  \n"})
		_, err := svc.Chat(context.Background(), request_models.ChatRequest{Messages: msgs})
		assert.ErrorIs(t, err, utils.ErrEmptyCompletion)
	})
}
