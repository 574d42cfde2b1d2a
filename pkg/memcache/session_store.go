package mem

import (
	"context"
	"sync"
	"time"

	"youngeru/internal/quiz"
	"youngeru/pkg/utils"
)

// SessionStore keeps quiz wizard snapshots between requests. Load returns
// utils.ErrSessionNotFound for missing or expired sessions.
type SessionStore interface {
	Save(ctx context.Context, id string, snap quiz.Snapshot) error
	Load(ctx context.Context, id string) (quiz.Snapshot, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

type entry struct {
	snap      quiz.Snapshot
	expiresAt time.Time
}

// MemorySessions is an in-process SessionStore. Every Save extends the
// session's lifetime by ttl; a janitor drops expired entries.
type MemorySessions struct {
	mu   sync.RWMutex
	data map[string]entry
	ttl  time.Duration
	now  func() time.Time

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewMemorySessions(ttl, sweepEvery time.Duration) *MemorySessions {
	s := &MemorySessions{
		data: make(map[string]entry),
		ttl:  ttl,
		now:  time.Now,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.janitor(sweepEvery)
	return s
}

func (s *MemorySessions) Save(_ context.Context, id string, snap quiz.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry{snap: snap, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemorySessions) Load(_ context.Context, id string) (quiz.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[id]
	if !ok || s.now().After(e.expiresAt) {
		return quiz.Snapshot{}, utils.ErrSessionNotFound
	}
	return e.snap, nil
}

func (s *MemorySessions) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

func (s *MemorySessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *MemorySessions) sweep() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
		}
	}
}

func (s *MemorySessions) janitor(every time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

// Close stops the janitor and waits for it to exit.
func (s *MemorySessions) Close() error {
	s.once.Do(func() { close(s.stop) })
	<-s.done
	return nil
}
