package request_models

type SetAnswerRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}
