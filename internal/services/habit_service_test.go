package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youngeru/internal/models/db_models"
	"youngeru/internal/models/request_models"
	"youngeru/pkg/utils"
)

type fakeHabitRepo struct {
	habits map[uuid.UUID]db_models.Habit
	logs   map[string]db_models.HabitLog
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{habits: map[uuid.UUID]db_models.Habit{}, logs: map[string]db_models.HabitLog{}}
}

func (f *fakeHabitRepo) Create(_ context.Context, habit *db_models.Habit) error {
	habit.ID = uuid.New()
	f.habits[habit.ID] = *habit
	return nil
}

func (f *fakeHabitRepo) ListByUser(_ context.Context, userID string) ([]db_models.Habit, error) {
	var out []db_models.Habit
	for _, h := range f.habits {
		if h.UserID.String() == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHabitRepo) FindByID(_ context.Context, userID, habitID string) (*db_models.Habit, error) {
	id, err := uuid.Parse(habitID)
	if err != nil {
		return nil, nil
	}
	h, ok := f.habits[id]
	if !ok || h.UserID.String() != userID {
		return nil, nil
	}
	return &h, nil
}

func (f *fakeHabitRepo) LogsSince(_ context.Context, userID, since string) ([]db_models.HabitLog, error) {
	var out []db_models.HabitLog
	for _, l := range f.logs {
		if l.UserID.String() == userID && l.Date >= since {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeHabitRepo) FindLog(_ context.Context, habitID, date string) (*db_models.HabitLog, error) {
	l, ok := f.logs[habitID+"/"+date]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (f *fakeHabitRepo) SaveLog(_ context.Context, log *db_models.HabitLog) error {
	f.logs[log.HabitID.String()+"/"+log.Date] = *log
	return nil
}

func newHabitService(repo *fakeHabitRepo) *HabitService {
	svc := NewHabitService(repo).(*HabitService)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC) }
	return svc
}

func ptr[T any](v T) *T { return &v }

func TestCreateHabitValidation(t *testing.T) {
	svc := newHabitService(newFakeHabitRepo())
	user := uuid.New()

	tests := []struct {
		name string
		req  request_models.CreateHabitRequest
	}{
		{"blank title", request_models.CreateHabitRequest{Title: "   "}},
		{"weekly schedule", request_models.CreateHabitRequest{Title: "Walk", ScheduleType: "weekly"}},
		{"bad reminder", request_models.CreateHabitRequest{Title: "Walk", ReminderTime: ptr("25:00")}},
		{"reminder without colon", request_models.CreateHabitRequest{Title: "Walk", ReminderTime: ptr("0800")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateHabit(context.Background(), user, tt.req)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestCreateHabit(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := newHabitService(repo)

	resp, err := svc.CreateHabit(context.Background(), uuid.New(), request_models.CreateHabitRequest{
		Title:        "  Take vitamin D ",
		ReminderTime: ptr("08:30"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Take vitamin D", resp.Title)
	assert.Equal(t, ScheduleDaily, resp.ScheduleType)
	assert.Equal(t, "08:30", *resp.ReminderTime)
	assert.False(t, resp.DoneToday)
	assert.Zero(t, resp.Streak)
	assert.Len(t, repo.habits, 1)
}

func TestToggleToday(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := newHabitService(repo)
	ctx := context.Background()
	user := uuid.New()

	habit, err := svc.CreateHabit(ctx, user, request_models.CreateHabitRequest{Title: "Magnesium"})
	require.NoError(t, err)
	habitID := uuid.MustParse(habit.ID)
	require.NoError(t, repo.SaveLog(ctx, &db_models.HabitLog{HabitID: habitID, UserID: user, Date: "2025-03-09", Done: true}))

	resp, err := svc.ToggleToday(ctx, user, habit.ID)
	require.NoError(t, err)
	assert.True(t, resp.DoneToday)
	assert.Equal(t, 2, resp.Streak)
	assert.True(t, repo.logs[habit.ID+"/2025-03-10"].Done)

	resp, err = svc.ToggleToday(ctx, user, habit.ID)
	require.NoError(t, err)
	assert.False(t, resp.DoneToday)
	assert.Zero(t, resp.Streak)
	assert.False(t, repo.logs[habit.ID+"/2025-03-10"].Done)

	list, err := svc.ListHabits(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].DoneToday)
}

func TestToggleTodayOtherUsersHabit(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := newHabitService(repo)
	ctx := context.Background()

	habit, err := svc.CreateHabit(ctx, uuid.New(), request_models.CreateHabitRequest{Title: "Walk"})
	require.NoError(t, err)

	_, err = svc.ToggleToday(ctx, uuid.New(), habit.ID)
	assert.ErrorIs(t, err, utils.ErrHabitNotFound)
	_, err = svc.ToggleToday(ctx, uuid.New(), "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrHabitNotFound)
	assert.Empty(t, repo.logs)
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name  string
		done  map[string]bool
		today string
		want  int
	}{
		{name: "nothing logged", done: nil, today: "2025-03-10", want: 0},
		{name: "today only", done: map[string]bool{"2025-03-10": true}, today: "2025-03-10", want: 1},
		{
			name:  "yesterday without today",
			done:  map[string]bool{"2025-03-09": true},
			today: "2025-03-10",
			want:  0,
		},
		{
			name:  "gap stops the count",
			done:  map[string]bool{"2025-03-10": true, "2025-03-09": true, "2025-03-07": true},
			today: "2025-03-10",
			want:  2,
		},
		{
			name:  "crosses month boundary",
			done:  map[string]bool{"2025-03-01": true, "2025-02-28": true, "2025-02-27": true},
			today: "2025-03-01",
			want:  3,
		},
		{name: "bad key", done: map[string]bool{"x": true}, today: "x", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.done, tt.today))
		})
	}
}
