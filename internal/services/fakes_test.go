package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"youngeru/internal/models/db_models"
	"youngeru/internal/quiz"
	mem "youngeru/pkg/memcache"
	"youngeru/pkg/utils"
)

var errBoom = errors.New("boom")

type fakeLeads struct {
	mu    sync.Mutex
	leads []db_models.Lead
	err   error
}

func (f *fakeLeads) Create(_ context.Context, lead *db_models.Lead) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	lead.ID = uuid.New()
	f.leads = append(f.leads, *lead)
	return nil
}

func (f *fakeLeads) ListAll(context.Context) ([]db_models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]db_models.Lead(nil), f.leads...), f.err
}

type sentPlan struct {
	to   string
	plan []quiz.Recommendation
}

type fakeMailer struct {
	mu       sync.Mutex
	plans    []sentPlan
	waitlist []string
	err      error
}

func (f *fakeMailer) SendPlan(_ context.Context, to string, plan []quiz.Recommendation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plans = append(f.plans, sentPlan{to: to, plan: plan})
	return f.err
}

func (f *fakeMailer) SendWaitlistWelcome(_ context.Context, to string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.waitlist = append(f.waitlist, to)
	return f.err
}

type fakeChat struct {
	reply    string
	err      error
	messages []utils.ChatMessage
}

func (f *fakeChat) Provider() string { return "fake" }

func (f *fakeChat) Complete(_ context.Context, messages []utils.ChatMessage) (string, error) {
	f.messages = messages
	return f.reply, f.err
}

// blockingMailer holds SendPlan until release is closed.
type blockingMailer struct {
	started chan struct{}
	release chan struct{}
}

func newBlockingMailer() *blockingMailer {
	return &blockingMailer{started: make(chan struct{}, 1), release: make(chan struct{})}
}

func (b *blockingMailer) SendPlan(ctx context.Context, _ string, _ []quiz.Recommendation) error {
	b.started <- struct{}{}
	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *blockingMailer) SendWaitlistWelcome(context.Context, string) error { return nil }

// flakyStore fails every Save while saveErr is set.
type flakyStore struct {
	mem.SessionStore
	mu      sync.Mutex
	saveErr error
}

func (f *flakyStore) failSaves(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveErr = err
}

func (f *flakyStore) Save(ctx context.Context, id string, snap quiz.Snapshot) error {
	f.mu.Lock()
	err := f.saveErr
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.SessionStore.Save(ctx, id, snap)
}
