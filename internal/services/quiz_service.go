package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"youngeru/internal/metrics"
	"youngeru/internal/models/db_models"
	"youngeru/internal/models/response_models"
	"youngeru/internal/quiz"
	"youngeru/internal/repositories"
	mem "youngeru/pkg/memcache"
	"youngeru/pkg/utils"
)

type QuizServiceInterface interface {
	Start(ctx context.Context) (*response_models.QuizSessionResponse, error)
	Get(ctx context.Context, id string) (*response_models.QuizSessionResponse, error)
	SetAnswer(ctx context.Context, id string, field quiz.Field, value string) (*response_models.QuizSessionResponse, error)
	Advance(ctx context.Context, id string) (*response_models.QuizSessionResponse, error)
	Retreat(ctx context.Context, id string) (*response_models.QuizSessionResponse, error)
	Reset(ctx context.Context, id string) (*response_models.QuizSessionResponse, error)
	CaptureEmail(ctx context.Context, id, email string) (*response_models.EmailCaptureResponse, error)
	JoinWaitlist(ctx context.Context, email string) error
	Options() response_models.QuizOptionsResponse
}

type QuizService struct {
	store   mem.SessionStore
	engine  quiz.Recommender
	leads   repositories.LeadRepositoryInterface
	mailer  IMailService
	metrics *metrics.Metrics
	log     *zap.Logger
	locks   sessionLocks
}

func NewQuizService(
	store mem.SessionStore,
	engine quiz.Recommender,
	leads repositories.LeadRepositoryInterface,
	mailer IMailService,
	m *metrics.Metrics,
	log *zap.Logger,
) QuizServiceInterface {
	return &QuizService{
		store:   store,
		engine:  engine,
		leads:   leads,
		mailer:  mailer,
		metrics: m,
		log:     log,
	}
}

const lockStripes = 64

// sessionLocks serializes operations per session id.
type sessionLocks struct {
	stripes [lockStripes]sync.Mutex
}

func (l *sessionLocks) lock(id string) func() {
	m := &l.stripes[stripeOf(id)]
	m.Lock()
	return m.Unlock
}

func stripeOf(id string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return h.Sum32() % lockStripes
}

func (s *QuizService) Start(ctx context.Context) (*response_models.QuizSessionResponse, error) {
	id := uuid.NewString()
	w := quiz.NewWizard(s.engine)
	w.Begin()
	s.recordTransition(quiz.StepLanding, w.Step())

	if err := s.store.Save(ctx, id, w.Snapshot()); err != nil {
		return nil, fmt.Errorf("save quiz session: %w", err)
	}
	return sessionResponse(id, w), nil
}

func (s *QuizService) Get(ctx context.Context, id string) (*response_models.QuizSessionResponse, error) {
	snap, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	w, err := quiz.Restore(s.engine, snap)
	if err != nil {
		return nil, err
	}
	return sessionResponse(id, w), nil
}

func (s *QuizService) SetAnswer(ctx context.Context, id string, field quiz.Field, value string) (*response_models.QuizSessionResponse, error) {
	return s.mutate(ctx, id, func(w *quiz.Wizard) error {
		if err := w.SetAnswer(field, value); err != nil {
			return fmt.Errorf("%w: %s %q: %v", utils.ErrInvalidInput, field, value, err)
		}
		return nil
	})
}

// Advance follows the Continue control. On landing it begins a new quiz.
func (s *QuizService) Advance(ctx context.Context, id string) (*response_models.QuizSessionResponse, error) {
	return s.mutate(ctx, id, func(w *quiz.Wizard) error {
		if w.Step() == quiz.StepLanding {
			w.Begin()
			return nil
		}
		if !w.Advance() {
			return fmt.Errorf("%w: step %s is not complete", utils.ErrInvalidTransition, w.Step())
		}
		return nil
	})
}

func (s *QuizService) Retreat(ctx context.Context, id string) (*response_models.QuizSessionResponse, error) {
	return s.mutate(ctx, id, func(w *quiz.Wizard) error {
		w.Retreat()
		return nil
	})
}

func (s *QuizService) Reset(ctx context.Context, id string) (*response_models.QuizSessionResponse, error) {
	return s.mutate(ctx, id, func(w *quiz.Wizard) error {
		w.Reset()
		return nil
	})
}

// CaptureEmail stores the finalized plan as a lead, returns the session
// to landing and mails the plan. A mail failure does not fail the capture.
func (s *QuizService) CaptureEmail(ctx context.Context, id, email string) (*response_models.EmailCaptureResponse, error) {
	lead, err := s.captureLead(ctx, id, email)
	if err != nil {
		return nil, err
	}

	// Mail goes out after the session lock is released.
	emailed := true
	if err := s.mailer.SendPlan(ctx, lead.Email, lead.Recommendations); err != nil {
		emailed = false
		s.log.Warn("send plan email", zap.String("lead_id", lead.ID.String()), zap.Error(err))
	}
	return &response_models.EmailCaptureResponse{
		LeadID:   lead.ID.String(),
		Emailed:  emailed,
		NextStep: string(quiz.StepLanding),
	}, nil
}

// captureLead saves the reset session before the lead. When the lead
// cannot be stored the previous snapshot is put back.
func (s *QuizService) captureLead(ctx context.Context, id, email string) (*db_models.Lead, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	snap, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	w, err := quiz.Restore(s.engine, snap)
	if err != nil {
		return nil, err
	}

	from := w.Step()
	switch from {
	case quiz.StepResults:
		w.Advance()
	case quiz.StepEmailCapture:
	default:
		return nil, fmt.Errorf("%w: email capture is not available at %s", utils.ErrInvalidTransition, from)
	}

	final, _ := w.Finalized()
	lead := &db_models.Lead{
		Email:           normalizeEmail(email),
		Source:          db_models.LeadSourceQuiz,
		SessionID:       id,
		Answers:         &final,
		Recommendations: w.Recommendations(),
	}

	w.Reset()
	if err := s.store.Save(ctx, id, w.Snapshot()); err != nil {
		return nil, fmt.Errorf("save quiz session: %w", err)
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		s.log.Error("save quiz lead", zap.String("session_id", id), zap.Error(err))
		if err := s.store.Save(ctx, id, snap); err != nil {
			s.log.Error("restore quiz session", zap.String("session_id", id), zap.Error(err))
		}
		return nil, utils.ErrDatabaseError
	}

	s.recordTransition(from, w.Step())
	s.metrics.LeadsCaptured.WithLabelValues(db_models.LeadSourceQuiz).Inc()
	return lead, nil
}

func (s *QuizService) JoinWaitlist(ctx context.Context, email string) error {
	lead := &db_models.Lead{
		Email:  normalizeEmail(email),
		Source: db_models.LeadSourceWaitlist,
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		s.log.Error("save waitlist lead", zap.Error(err))
		return utils.ErrDatabaseError
	}
	s.metrics.LeadsCaptured.WithLabelValues(db_models.LeadSourceWaitlist).Inc()

	if err := s.mailer.SendWaitlistWelcome(ctx, lead.Email); err != nil {
		s.log.Warn("send waitlist email", zap.Error(err))
	}
	return nil
}

func (s *QuizService) Options() response_models.QuizOptionsResponse {
	resp := response_models.QuizOptionsResponse{Options: quiz.Options}
	for _, step := range quiz.QuizSteps() {
		resp.Steps = append(resp.Steps, response_models.QuizStepOptions{
			Step:     step,
			Title:    step.Title(),
			Progress: quiz.Progress(step),
			Fields:   step.RequiredFields(),
		})
	}
	return resp
}

// mutate loads a session, applies fn and saves the result under the
// session's lock. Nothing is saved when fn fails.
func (s *QuizService) mutate(ctx context.Context, id string, fn func(w *quiz.Wizard) error) (*response_models.QuizSessionResponse, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	snap, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	w, err := quiz.Restore(s.engine, snap)
	if err != nil {
		return nil, err
	}

	from := w.Step()
	if err := fn(w); err != nil {
		return nil, err
	}
	s.recordTransition(from, w.Step())

	if err := s.store.Save(ctx, id, w.Snapshot()); err != nil {
		return nil, fmt.Errorf("save quiz session: %w", err)
	}
	return sessionResponse(id, w), nil
}

func (s *QuizService) recordTransition(from, to quiz.Step) {
	if from == to {
		return
	}
	s.metrics.QuizTransitions.WithLabelValues(string(from), string(to)).Inc()
	if to == quiz.StepResults && from == quiz.StepGoals {
		s.metrics.QuizCompletions.Inc()
	}
	s.log.Debug("quiz transition", zap.String("from", string(from)), zap.String("to", string(to)))
}

func sessionResponse(id string, w *quiz.Wizard) *response_models.QuizSessionResponse {
	return &response_models.QuizSessionResponse{SessionID: id, View: w.View()}
}
