package response_models

type ChatResponse struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}
