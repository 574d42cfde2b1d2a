package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"youngeru/internal/config"
	"youngeru/internal/metrics"
	"youngeru/internal/models/db_models"
	"youngeru/internal/quiz"
	"youngeru/internal/services"
	mem "youngeru/pkg/memcache"
)

type memLeads struct {
	leads []db_models.Lead
}

func (m *memLeads) Create(_ context.Context, lead *db_models.Lead) error {
	lead.ID = uuid.New()
	m.leads = append(m.leads, *lead)
	return nil
}

func (m *memLeads) ListAll(context.Context) ([]db_models.Lead, error) {
	return m.leads, nil
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type session struct {
	SessionID       string                `json:"session_id"`
	Step            quiz.Step             `json:"step"`
	Progress        int                   `json:"progress"`
	CanAdvance      bool                  `json:"can_advance"`
	Recommendations []quiz.Recommendation `json:"recommendations"`
}

func newQuizRouter(t *testing.T) (*gin.Engine, *memLeads) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := mem.NewMemorySessions(time.Hour, time.Hour)
	t.Cleanup(func() { _ = store.Close() })
	leads := &memLeads{}
	log := zap.NewNop()
	svc := services.NewQuizService(store, quiz.DefaultEngine(), leads,
		services.NewMailService(config.SMTPConfig{}, log), metrics.New(), log)
	ctrl := NewQuizController(svc)

	r := gin.New()
	r.GET("/quiz/options", ctrl.Options)
	r.POST("/quiz/sessions", ctrl.StartSession)
	r.GET("/quiz/sessions/:id", ctrl.GetSession)
	r.PUT("/quiz/sessions/:id/answers", ctrl.SetAnswer)
	r.POST("/quiz/sessions/:id/advance", ctrl.Advance)
	r.POST("/quiz/sessions/:id/retreat", ctrl.Retreat)
	r.POST("/quiz/sessions/:id/email", ctrl.CaptureEmail)
	r.POST("/waitlist", ctrl.JoinWaitlist)
	return r, leads
}

func call(t *testing.T, r http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func decodeSession(t *testing.T, env envelope) session {
	t.Helper()
	var s session
	require.NoError(t, json.Unmarshal(env.Data, &s))
	return s
}

func TestQuizFlowOverHTTP(t *testing.T) {
	r, leads := newQuizRouter(t)

	code, env := call(t, r, http.MethodPost, "/quiz/sessions", nil)
	require.Equal(t, http.StatusCreated, code)
	s := decodeSession(t, env)
	require.Equal(t, quiz.StepWelcome, s.Step)
	base := "/quiz/sessions/" + s.SessionID

	answer := func(field quiz.Field, value string) {
		code, env := call(t, r, http.MethodPut, base+"/answers", map[string]string{"field": string(field), "value": value})
		require.Equal(t, http.StatusOK, code, env.Message)
	}
	advance := func() session {
		code, env := call(t, r, http.MethodPost, base+"/advance", nil)
		require.Equal(t, http.StatusOK, code, env.Message)
		return decodeSession(t, env)
	}

	s = advance()
	assert.Equal(t, quiz.StepBasics, s.Step)
	assert.Equal(t, 25, s.Progress)

	code, env = call(t, r, http.MethodPost, base+"/advance", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "error", env.Status)

	answer(quiz.FieldAgeRange, "51-55")
	answer(quiz.FieldGender, "Female")
	advance()
	answer(quiz.FieldActivityLevel, quiz.ActivitySedentary)
	advance()
	answer(quiz.FieldDietPattern, quiz.DietHealthConscious)
	advance()
	answer(quiz.FieldGoals, quiz.GoalImmune)
	s = advance()
	require.Equal(t, quiz.StepResults, s.Step)
	require.Len(t, s.Recommendations, 2)
	assert.Equal(t, "Immune Support", s.Recommendations[1].Category)

	code, _ = call(t, r, http.MethodPost, base+"/email", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = call(t, r, http.MethodPost, base+"/email", map[string]string{"email": "jane@example.com"})
	require.Equal(t, http.StatusCreated, code, env.Message)
	require.Len(t, leads.leads, 1)
	assert.Equal(t, "jane@example.com", leads.leads[0].Email)

	code, env = call(t, r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, quiz.StepLanding, decodeSession(t, env).Step)
}

func TestQuizUnknownSession(t *testing.T) {
	r, _ := newQuizRouter(t)

	code, env := call(t, r, http.MethodGet, "/quiz/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Quiz session not found or expired", env.Message)
}

func TestQuizSetAnswerValidation(t *testing.T) {
	r, _ := newQuizRouter(t)
	_, env := call(t, r, http.MethodPost, "/quiz/sessions", nil)
	base := "/quiz/sessions/" + decodeSession(t, env).SessionID

	code, _ := call(t, r, http.MethodPut, base+"/answers", map[string]string{"value": "Male"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, r, http.MethodPut, base+"/answers", map[string]string{"field": "gender", "value": "Other"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestQuizOptionsAndWaitlist(t *testing.T) {
	r, leads := newQuizRouter(t)

	code, env := call(t, r, http.MethodGet, "/quiz/options", nil)
	require.Equal(t, http.StatusOK, code)
	var opts struct {
		Steps   []json.RawMessage   `json:"steps"`
		Options map[string][]string `json:"options"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &opts))
	assert.Len(t, opts.Steps, 4)
	assert.Equal(t, []string{"Male", "Female"}, opts.Options["gender"])

	code, _ = call(t, r, http.MethodPost, "/waitlist", map[string]string{"email": "w@example.com"})
	assert.Equal(t, http.StatusCreated, code)
	require.Len(t, leads.leads, 1)
	assert.Equal(t, db_models.LeadSourceWaitlist, leads.leads[0].Source)
}
