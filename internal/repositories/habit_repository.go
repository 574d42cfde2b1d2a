package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"youngeru/internal/models/db_models"
)

type HabitRepositoryInterface interface {
	Create(ctx context.Context, habit *db_models.Habit) error
	ListByUser(ctx context.Context, userID string) ([]db_models.Habit, error)
	FindByID(ctx context.Context, userID, habitID string) (*db_models.Habit, error)
	// LogsSince returns the user's logs dated on or after since (YYYY-MM-DD).
	LogsSince(ctx context.Context, userID, since string) ([]db_models.HabitLog, error)
	FindLog(ctx context.Context, habitID, date string) (*db_models.HabitLog, error)
	SaveLog(ctx context.Context, log *db_models.HabitLog) error
}

type HabitRepository struct {
	db *gorm.DB
}

func NewHabitRepository(db *gorm.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

func (r *HabitRepository) Create(ctx context.Context, habit *db_models.Habit) error {
	return r.db.WithContext(ctx).Create(habit).Error
}

func (r *HabitRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Habit, error) {
	var habits []db_models.Habit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&habits).Error
	return habits, err
}

func (r *HabitRepository) FindByID(ctx context.Context, userID, habitID string) (*db_models.Habit, error) {
	var habit db_models.Habit
	err := r.db.WithContext(ctx).First(&habit, "id = ? AND user_id = ?", habitID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &habit, nil
}

func (r *HabitRepository) LogsSince(ctx context.Context, userID, since string) ([]db_models.HabitLog, error) {
	var logs []db_models.HabitLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

func (r *HabitRepository) FindLog(ctx context.Context, habitID, date string) (*db_models.HabitLog, error) {
	var log db_models.HabitLog
	err := r.db.WithContext(ctx).First(&log, "habit_id = ? AND date = ?", habitID, date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

// SaveLog upserts on (habit_id, date).
func (r *HabitRepository) SaveLog(ctx context.Context, log *db_models.HabitLog) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "habit_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"done", "updated_at"}),
	}).Create(log).Error
}
