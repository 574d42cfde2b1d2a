package mem

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"youngeru/internal/quiz"
	"youngeru/pkg/utils"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestStore(t *testing.T, ttl time.Duration) (*MemorySessions, *clock) {
	t.Helper()
	s := NewMemorySessions(ttl, time.Hour)
	t.Cleanup(func() { _ = s.Close() })
	c := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	s.now = c.now
	return s, c
}

func TestMemorySessionsRoundTrip(t *testing.T) {
	s, _ := newTestStore(t, time.Minute)
	ctx := context.Background()

	snap := quiz.Snapshot{Step: quiz.StepBasics, Answers: quiz.Answers{AgeRange: "41-45"}}
	require.NoError(t, s.Save(ctx, "a", snap))

	got, err := s.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Load(ctx, "a")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestMemorySessionsExpire(t *testing.T) {
	s, c := newTestStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "a", quiz.Snapshot{Step: quiz.StepWelcome}))
	c.t = c.t.Add(50 * time.Second)
	require.NoError(t, s.Save(ctx, "b", quiz.Snapshot{Step: quiz.StepWelcome}))

	c.t = c.t.Add(20 * time.Second)
	_, err := s.Load(ctx, "a")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
	_, err = s.Load(ctx, "b")
	assert.NoError(t, err)

	s.sweep()
	assert.Equal(t, 1, s.Len())
}

func TestMemorySessionsCloseIsIdempotent(t *testing.T) {
	s := NewMemorySessions(time.Minute, time.Millisecond)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}
