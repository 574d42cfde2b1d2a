package request_models

type AskQuestionRequest struct {
	Title string   `json:"title" binding:"required,max=200"`
	Body  string   `json:"body" binding:"required"`
	Tags  []string `json:"tags"`
}

type AnswerQuestionRequest struct {
	Body string `json:"body" binding:"required"`
}
