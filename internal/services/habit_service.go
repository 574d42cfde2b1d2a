package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"youngeru/internal/models/db_models"
	"youngeru/internal/models/request_models"
	"youngeru/internal/models/response_models"
	"youngeru/internal/repositories"
	"youngeru/pkg/utils"
)

const (
	ScheduleDaily = "daily"

	// streakWindow bounds how far back logs are read to compute streaks.
	streakWindow = 365
)

type HabitServiceInterface interface {
	CreateHabit(ctx context.Context, userID uuid.UUID, request request_models.CreateHabitRequest) (*response_models.HabitResponse, error)
	ListHabits(ctx context.Context, userID uuid.UUID) ([]response_models.HabitResponse, error)
	ToggleToday(ctx context.Context, userID uuid.UUID, habitID string) (*response_models.HabitResponse, error)
}

type HabitService struct {
	repo repositories.HabitRepositoryInterface
	now  func() time.Time
	loc  *time.Location
}

func NewHabitService(repo repositories.HabitRepositoryInterface) HabitServiceInterface {
	return &HabitService{repo: repo, now: time.Now, loc: time.UTC}
}

func (h *HabitService) CreateHabit(ctx context.Context, userID uuid.UUID, request request_models.CreateHabitRequest) (*response_models.HabitResponse, error) {
	title := strings.TrimSpace(request.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", utils.ErrInvalidInput)
	}
	schedule := request.ScheduleType
	if schedule == "" {
		schedule = ScheduleDaily
	}
	if schedule != ScheduleDaily {
		return nil, fmt.Errorf("%w: unsupported schedule %q", utils.ErrInvalidInput, schedule)
	}
	if request.ReminderTime != nil && !utils.IsClockTime(*request.ReminderTime) {
		return nil, fmt.Errorf("%w: reminder_time must be HH:MM", utils.ErrInvalidInput)
	}

	habit := &db_models.Habit{
		UserID:       userID,
		Title:        title,
		Schedule:     db_models.HabitSchedule{Type: schedule},
		ReminderTime: request.ReminderTime,
	}
	if err := h.repo.Create(ctx, habit); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toHabitResponse(habit, nil, h.today()), nil
}

func (h *HabitService) ListHabits(ctx context.Context, userID uuid.UUID) ([]response_models.HabitResponse, error) {
	habits, err := h.repo.ListByUser(ctx, userID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	logs, err := h.recentLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := h.today()
	out := make([]response_models.HabitResponse, 0, len(habits))
	for i := range habits {
		out = append(out, *toHabitResponse(&habits[i], logs[habits[i].ID], today))
	}
	return out, nil
}

// ToggleToday creates a done log for today or flips the existing one.
func (h *HabitService) ToggleToday(ctx context.Context, userID uuid.UUID, habitID string) (*response_models.HabitResponse, error) {
	habit, err := h.repo.FindByID(ctx, userID.String(), habitID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if habit == nil {
		return nil, utils.ErrHabitNotFound
	}

	today := h.today()
	log, err := h.repo.FindLog(ctx, habit.ID.String(), today)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if log == nil {
		log = &db_models.HabitLog{HabitID: habit.ID, UserID: userID, Date: today, Done: true}
	} else {
		log.Done = !log.Done
	}
	if err := h.repo.SaveLog(ctx, log); err != nil {
		return nil, utils.ErrDatabaseError
	}

	logs, err := h.recentLogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toHabitResponse(habit, logs[habit.ID], today), nil
}

// recentLogs returns done days per habit inside the streak window.
func (h *HabitService) recentLogs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]map[string]bool, error) {
	since := utils.DayKey(h.now().AddDate(0, 0, -streakWindow), h.loc)
	logs, err := h.repo.LogsSince(ctx, userID.String(), since)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make(map[uuid.UUID]map[string]bool)
	for _, l := range logs {
		if !l.Done {
			continue
		}
		if out[l.HabitID] == nil {
			out[l.HabitID] = make(map[string]bool)
		}
		out[l.HabitID][l.Date] = true
	}
	return out, nil
}

func (h *HabitService) today() string {
	return utils.DayKey(h.now(), h.loc)
}

// Streak counts consecutive done days ending today. It is 0 when today
// is not done.
func Streak(done map[string]bool, today string) int {
	day, err := utils.ParseDayKey(today, time.UTC)
	if err != nil {
		return 0
	}
	n := 0
	for done[utils.DayKey(day, time.UTC)] {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}

func toHabitResponse(habit *db_models.Habit, done map[string]bool, today string) *response_models.HabitResponse {
	return &response_models.HabitResponse{
		ID:           habit.ID.String(),
		Title:        habit.Title,
		ScheduleType: habit.Schedule.Type,
		ReminderTime: habit.ReminderTime,
		DoneToday:    done[today],
		Streak:       Streak(done, today),
	}
}
