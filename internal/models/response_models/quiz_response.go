package response_models

import "youngeru/internal/quiz"

type QuizSessionResponse struct {
	SessionID string `json:"session_id"`
	quiz.View
}

type QuizOptionsResponse struct {
	Steps   []QuizStepOptions       `json:"steps"`
	Options map[quiz.Field][]string `json:"options"`
}

type QuizStepOptions struct {
	Step     quiz.Step    `json:"step"`
	Title    string       `json:"title"`
	Progress int          `json:"progress"`
	Fields   []quiz.Field `json:"fields"`
}

type EmailCaptureResponse struct {
	LeadID   string `json:"lead_id"`
	Emailed  bool   `json:"emailed"`
	NextStep string `json:"next_step"`
}
