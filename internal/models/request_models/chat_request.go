package request_models

type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=system user assistant"`
	Content string `json:"content"`
}

type ChatContext struct {
	Age       int      `json:"age"`
	Goals     []string `json:"goals"`
	Lifestyle string   `json:"lifestyle"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
	UserID   string        `json:"user_id"`
	Context  *ChatContext  `json:"context"`
}
