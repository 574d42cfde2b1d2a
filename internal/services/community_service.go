package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"youngeru/internal/models/db_models"
	"youngeru/internal/models/request_models"
	"youngeru/internal/models/response_models"
	"youngeru/internal/repositories"
	"youngeru/pkg/utils"
)

const maxTags = 10

type CommunityServiceInterface interface {
	ListQuestions(ctx context.Context, page, pageSize int) ([]response_models.QuestionSummary, error)
	GetQuestion(ctx context.Context, id string) (*response_models.QuestionDetail, error)
	AskQuestion(ctx context.Context, userID uuid.UUID, request request_models.AskQuestionRequest) (*response_models.QuestionSummary, error)
	AnswerQuestion(ctx context.Context, userID uuid.UUID, questionID string, request request_models.AnswerQuestionRequest) (*response_models.AnswerResponse, error)
}

type CommunityService struct {
	repo repositories.QuestionRepositoryInterface
}

func NewCommunityService(repo repositories.QuestionRepositoryInterface) CommunityServiceInterface {
	return &CommunityService{repo: repo}
}

func (c *CommunityService) ListQuestions(ctx context.Context, page, pageSize int) ([]response_models.QuestionSummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	rows, err := c.repo.ListQuestions(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.QuestionSummary, 0, len(rows))
	for _, r := range rows {
		summary := toQuestionSummary(&r.Question)
		summary.Author = displayName(r.AuthorName)
		summary.AnswerCount = r.AnswerCount
		out = append(out, summary)
	}
	return out, nil
}

func (c *CommunityService) GetQuestion(ctx context.Context, id string) (*response_models.QuestionDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrQuestionNotFound
	}
	q, err := c.repo.GetQuestion(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if q == nil {
		return nil, utils.ErrQuestionNotFound
	}

	detail := &response_models.QuestionDetail{
		QuestionSummary: toQuestionSummary(q),
		Answers:         make([]response_models.AnswerResponse, 0, len(q.Answers)),
	}
	detail.Author = displayName(q.Author.FirstName)
	detail.AnswerCount = len(q.Answers)
	for i := range q.Answers {
		detail.Answers = append(detail.Answers, toAnswerResponse(&q.Answers[i]))
	}
	return detail, nil
}

func (c *CommunityService) AskQuestion(ctx context.Context, userID uuid.UUID, request request_models.AskQuestionRequest) (*response_models.QuestionSummary, error) {
	title := strings.TrimSpace(request.Title)
	body := strings.TrimSpace(request.Body)
	if title == "" || body == "" {
		return nil, fmt.Errorf("%w: title and body are required", utils.ErrInvalidInput)
	}

	q := &db_models.Question{
		UserID: userID,
		Title:  title,
		Body:   body,
		Tags:   NormalizeTags(request.Tags),
	}
	if err := c.repo.CreateQuestion(ctx, q); err != nil {
		return nil, utils.ErrDatabaseError
	}
	summary := toQuestionSummary(q)
	return &summary, nil
}

func (c *CommunityService) AnswerQuestion(ctx context.Context, userID uuid.UUID, questionID string, request request_models.AnswerQuestionRequest) (*response_models.AnswerResponse, error) {
	body := strings.TrimSpace(request.Body)
	if body == "" {
		return nil, fmt.Errorf("%w: body is required", utils.ErrInvalidInput)
	}
	if _, err := uuid.Parse(questionID); err != nil {
		return nil, utils.ErrQuestionNotFound
	}

	q, err := c.repo.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if q == nil {
		return nil, utils.ErrQuestionNotFound
	}

	answer := &db_models.Answer{QuestionID: q.ID, UserID: userID, Body: body}
	if err := c.repo.CreateAnswer(ctx, answer); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := toAnswerResponse(answer)
	return &resp, nil
}

// NormalizeTags trims tags and drops empty ones and case-insensitive
// duplicates, keeping the first spelling.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || slices.Contains(seen, key) {
			continue
		}
		seen = append(seen, key)
		out = append(out, t)
		if len(out) == maxTags {
			break
		}
	}
	return out
}

func toQuestionSummary(q *db_models.Question) response_models.QuestionSummary {
	tags := []string(q.Tags)
	if tags == nil {
		tags = []string{}
	}
	return response_models.QuestionSummary{
		ID:        q.ID.String(),
		Title:     q.Title,
		Body:      q.Body,
		Tags:      tags,
		CreatedAt: q.CreatedAt,
	}
}

func toAnswerResponse(a *db_models.Answer) response_models.AnswerResponse {
	return response_models.AnswerResponse{
		ID:        a.ID.String(),
		Body:      a.Body,
		Author:    displayName(a.Author.FirstName),
		CreatedAt: a.CreatedAt,
	}
}

func displayName(name string) string {
	if name == "" {
		return "Anonymous"
	}
	return name
}
