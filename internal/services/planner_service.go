package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"youngeru/internal/models/db_models"
	"youngeru/internal/models/request_models"
	"youngeru/internal/models/response_models"
	"youngeru/internal/planner"
	"youngeru/internal/repositories"
	"youngeru/pkg/utils"
)

const plannerHistoryLimit = 20

type PlannerServiceInterface interface {
	CreatePlan(ctx context.Context, userID uuid.UUID, request request_models.PlanRequest) (*response_models.PlanResponse, error)
	ListSessions(ctx context.Context, userID uuid.UUID) ([]response_models.PlannerSessionResponse, error)
}

type PlannerService struct {
	repo repositories.PlannerRepositoryInterface
	log  *zap.Logger
}

func NewPlannerService(repo repositories.PlannerRepositoryInterface, log *zap.Logger) PlannerServiceInterface {
	return &PlannerService{repo: repo, log: log}
}

// CreatePlan builds the plan and stores it. A failed save still returns
// the plan, with Saved false.
func (p *PlannerService) CreatePlan(ctx context.Context, userID uuid.UUID, request request_models.PlanRequest) (*response_models.PlanResponse, error) {
	inputs, err := planner.Normalize(planner.Inputs{
		Goals:          request.Goals,
		Diet:           request.Diet,
		FishIntake:     request.FishIntake,
		SunExposure:    request.SunExposure,
		SleepQuality:   request.SleepQuality,
		Stress:         request.Stress,
		Budget:         request.Budget,
		Sensitivities:  request.Sensitivities,
		MedsConditions: request.MedsConditions,
	})
	if errors.Is(err, planner.ErrNoGoals) {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	items := planner.Build(inputs)
	resp := &response_models.PlanResponse{Items: items}

	session := &db_models.PlannerSession{UserID: userID, Inputs: inputs, Output: items}
	if err := p.repo.Create(ctx, session); err != nil {
		p.log.Warn("save planner session", zap.String("user_id", userID.String()), zap.Error(err))
		return resp, nil
	}
	resp.Saved = true
	resp.SessionID = session.ID.String()
	return resp, nil
}

func (p *PlannerService) ListSessions(ctx context.Context, userID uuid.UUID) ([]response_models.PlannerSessionResponse, error) {
	sessions, err := p.repo.ListByUser(ctx, userID.String(), plannerHistoryLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.PlannerSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, response_models.PlannerSessionResponse{
			ID:        s.ID.String(),
			CreatedAt: s.CreatedAt,
			Inputs:    s.Inputs,
			Items:     s.Output,
		})
	}
	return out, nil
}
