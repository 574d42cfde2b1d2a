package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"youngeru/internal/models/db_models"
	"youngeru/internal/models/request_models"
	"youngeru/internal/planner"
	"youngeru/pkg/utils"
)

type fakePlannerRepo struct {
	saved []db_models.PlannerSession
	err   error
}

func (f *fakePlannerRepo) Create(_ context.Context, session *db_models.PlannerSession) error {
	if f.err != nil {
		return f.err
	}
	session.ID = uuid.New()
	f.saved = append(f.saved, *session)
	return nil
}

func (f *fakePlannerRepo) ListByUser(context.Context, string, int) ([]db_models.PlannerSession, error) {
	return f.saved, f.err
}

func TestCreatePlanSavesSession(t *testing.T) {
	repo := &fakePlannerRepo{}
	svc := NewPlannerService(repo, zap.NewNop())
	user := uuid.New()

	resp, err := svc.CreatePlan(context.Background(), user, request_models.PlanRequest{
		Goals:        []string{planner.GoalFocus, planner.GoalEnergy, "flying"},
		SleepQuality: 2,
	})
	require.NoError(t, err)

	assert.True(t, resp.Saved)
	assert.NotEmpty(t, resp.SessionID)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "Vitamin D3", resp.Items[0].Category)
	assert.Equal(t, "Magnesium Glycinate", resp.Items[2].Category)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, user, repo.saved[0].UserID)
	assert.Equal(t, []string{planner.GoalFocus, planner.GoalEnergy}, repo.saved[0].Inputs.Goals)
	assert.Equal(t, planner.DefaultScore, repo.saved[0].Inputs.Stress)
}

func TestCreatePlanSaveFailureStillReturnsPlan(t *testing.T) {
	svc := NewPlannerService(&fakePlannerRepo{err: errBoom}, zap.NewNop())

	resp, err := svc.CreatePlan(context.Background(), uuid.New(), request_models.PlanRequest{
		Goals: []string{planner.GoalRecovery},
	})
	require.NoError(t, err)
	assert.False(t, resp.Saved)
	assert.Empty(t, resp.SessionID)
	require.Len(t, resp.Items, 1)
}

func TestCreatePlanWithoutKnownGoals(t *testing.T) {
	svc := NewPlannerService(&fakePlannerRepo{}, zap.NewNop())

	_, err := svc.CreatePlan(context.Background(), uuid.New(), request_models.PlanRequest{Goals: []string{"unknown"}})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestListSessionsDatabaseError(t *testing.T) {
	svc := NewPlannerService(&fakePlannerRepo{err: errBoom}, zap.NewNop())

	_, err := svc.ListSessions(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
