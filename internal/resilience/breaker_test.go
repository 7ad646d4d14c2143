package resilience

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestBreaker(cfg BreakerConfig) (*Breaker, *time.Time) {
	b := NewBreaker(cfg, testLogger())
	now := time.Now()
	b.now = func() time.Time { return now }
	return b, &now
}

// 5 последовательных отказов при пороге 50% и окне в 8 вызовов размыкают
// breaker; вызов в состоянии Open немедленно завершается ErrCircuitOpen.
func TestBreaker_OpensOnFailureRate(t *testing.T) {
	b, _ := newTestBreaker(BreakerConfig{
		WindowSize:       8,
		FailureThreshold: 0.5,
		ResetTimeout:     30 * time.Second,
	})

	for i := 0; i < 4; i++ {
		require.NoError(t, b.Allow())
		b.Record(false)
	}
	// 4/8 = 50%, порог еще не превышен
	assert.Equal(t, StateClosed, b.State())

	require.NoError(t, b.Allow())
	b.Record(false)

	// 5/8 = 62.5% > 50%
	assert.Equal(t, StateOpen, b.State())

	err := b.Allow()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestBreaker_SuccessesKeepClosed(t *testing.T) {
	b, _ := newTestBreaker(BreakerConfig{WindowSize: 8, FailureThreshold: 0.5, ResetTimeout: time.Second})

	for i := 0; i < 20; i++ {
		require.NoError(t, b.Allow())
		b.Record(true)
	}

	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_RollingWindowEvictsOldOutcomes(t *testing.T) {
	b, _ := newTestBreaker(BreakerConfig{WindowSize: 4, FailureThreshold: 0.5, ResetTimeout: time.Second})

	// Два отказа (2/4 = 50%, не превышен), затем четыре успеха вытесняют их
	b.Record(false)
	b.Record(false)
	assert.Equal(t, StateClosed, b.State())

	for i := 0; i < 4; i++ {
		b.Record(true)
	}

	// Отказы покинули окно: еще два отказа снова дают лишь 50%
	b.Record(false)
	b.Record(false)
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_HalfOpenAfterResetTimeout(t *testing.T) {
	b, now := newTestBreaker(BreakerConfig{WindowSize: 2, FailureThreshold: 0.4, ResetTimeout: 10 * time.Second})

	b.Record(false)
	require.Equal(t, StateOpen, b.State())

	// До истечения таймаута вызовы по-прежнему отклоняются
	*now = now.Add(5 * time.Second)
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	*now = now.Add(6 * time.Second)
	assert.Equal(t, StateHalfOpen, b.State())

	// Разрешен ровно один пробный вызов
	require.NoError(t, b.Allow())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestBreaker_TrialSuccessCloses(t *testing.T) {
	b, now := newTestBreaker(BreakerConfig{WindowSize: 2, FailureThreshold: 0.4, ResetTimeout: time.Second})

	b.Record(false)
	require.Equal(t, StateOpen, b.State())

	*now = now.Add(2 * time.Second)
	require.NoError(t, b.Allow())
	b.Record(true)

	assert.Equal(t, StateClosed, b.State())

	// Окно сброшено: одиночный отказ после восстановления снова размыкает
	// breaker только при превышении доли
	b.Record(true)
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_TrialFailureReopens(t *testing.T) {
	b, now := newTestBreaker(BreakerConfig{WindowSize: 2, FailureThreshold: 0.4, ResetTimeout: time.Second})

	b.Record(false)
	require.Equal(t, StateOpen, b.State())

	*now = now.Add(2 * time.Second)
	require.NoError(t, b.Allow())
	b.Record(false)

	assert.Equal(t, StateOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}
