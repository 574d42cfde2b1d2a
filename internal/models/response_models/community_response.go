package response_models

type QuestionSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	AnswerCount int      `json:"answer_count"`
	CreatedAt   int64    `json:"created_at"`
}

type AnswerResponse struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	Author    string `json:"author"`
	CreatedAt int64  `json:"created_at"`
}

type QuestionDetail struct {
	QuestionSummary
	Answers []AnswerResponse `json:"answers"`
}
