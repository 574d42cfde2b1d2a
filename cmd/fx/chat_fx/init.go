package chat_fx

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"youngeru/internal/config"
	"youngeru/internal/metrics"
	"youngeru/internal/services"
	"youngeru/pkg/utils"
)

var Module = fx.Provide(
	ProvideLLMClients,
	ProvideChatService,
)

// ProvideLLMClients builds the chat and embedding clients for
// LLM_PROVIDER. Both are nil when the provider's key is not set.
func ProvideLLMClients(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (utils.ChatClientInterface, utils.EmbeddingClientInterface, error) {
	opts := LLMOptions(cfg.LLM)
	chat, embed, err := utils.NewLLMClients(context.Background(), opts)
	if err != nil {
		return nil, nil, err
	}
	if chat == nil {
		log.Warn("no LLM api key configured, AI chat disabled", zap.String("provider", opts.Provider))
		return nil, nil, nil
	}
	log.Info("LLM client ready", zap.String("provider", chat.Provider()), zap.String("model", opts.ChatModel))

	if closer, ok := chat.(io.Closer); ok {
		lc.Append(fx.Hook{OnStop: func(context.Context) error { return closer.Close() }})
	}
	return chat, embed, nil
}

// LLMOptions maps the config onto the options of the selected provider.
func LLMOptions(cfg config.LLMConfig) utils.LLMOptions {
	opts := utils.LLMOptions{
		Provider:       cfg.Provider,
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.OpenAIModel,
		EmbeddingModel: cfg.EmbeddingModel,
		MaxTokens:      cfg.MaxTokens,
		Temperature:    cfg.Temperature,
	}
	if cfg.Provider == "gemini" {
		opts.APIKey = cfg.GeminiKey
		opts.ChatModel = cfg.GeminiModel
	}
	return opts
}

func ProvideChatService(client utils.ChatClientInterface, m *metrics.Metrics, log *zap.Logger) services.ChatServiceInterface {
	return services.NewChatService(client, m, log.Named("chat"))
}
