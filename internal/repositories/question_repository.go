package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"youngeru/internal/models/db_models"
)

type QuestionRepositoryInterface interface {
	CreateQuestion(ctx context.Context, q *db_models.Question) error
	ListQuestions(ctx context.Context, page, pageSize int) ([]QuestionRow, error)
	GetQuestion(ctx context.Context, id string) (*db_models.Question, error)
	CreateAnswer(ctx context.Context, a *db_models.Answer) error
}

// QuestionRow is a question with its author and answer count.
type QuestionRow struct {
	db_models.Question
	AuthorName  string
	AnswerCount int
}

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) CreateQuestion(ctx context.Context, q *db_models.Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *QuestionRepository) ListQuestions(ctx context.Context, page, pageSize int) ([]QuestionRow, error) {
	var rows []QuestionRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Question{}).
		Select(`questions.*, accounts.first_name AS author_name,
			(SELECT count(*) FROM answers WHERE answers.question_id = questions.id AND answers.deleted_at IS NULL) AS answer_count`).
		Joins("LEFT JOIN accounts ON accounts.id = questions.user_id").
		Order("questions.created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Scan(&rows).Error
	return rows, err
}

func (r *QuestionRepository) GetQuestion(ctx context.Context, id string) (*db_models.Question, error) {
	var q db_models.Question
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Answers", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Answers.Author").
		First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) CreateAnswer(ctx context.Context, a *db_models.Answer) error {
	return r.db.WithContext(ctx).Create(a).Error
}
