package syncer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	scores map[int64]map[string]int64
	err    error
}

func (f *fakeCounter) AllScores(context.Context) (map[int64]map[string]int64, error) {
	return f.scores, f.err
}

type totalKey struct {
	pollID int64
	label  string
}

type fakeTotals struct {
	mu     sync.Mutex
	rows   map[totalKey]int64
	failOn totalKey
}

func (f *fakeTotals) UpsertTotal(_ context.Context, pollID int64, label string, total int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := totalKey{pollID, label}
	if key == f.failOn {
		return errors.New("storage unavailable")
	}
	if f.rows == nil {
		f.rows = make(map[totalKey]int64)
	}
	f.rows[key] = total
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSyncOnce_UpsertsAllCounters(t *testing.T) {
	counter := &fakeCounter{scores: map[int64]map[string]int64{
		7: {"Red": 5, "Blue": 3},
		8: {"Go": 12},
	}}
	totals := &fakeTotals{}

	s := New(discardLogger(), counter, totals, time.Second)
	s.syncOnce(context.Background())

	assert.Equal(t, map[totalKey]int64{
		{7, "Red"}:  5,
		{7, "Blue"}: 3,
		{8, "Go"}:   12,
	}, totals.rows)
}

func TestSyncOnce_LastWriteWins(t *testing.T) {
	counter := &fakeCounter{scores: map[int64]map[string]int64{7: {"Red": 5}}}
	totals := &fakeTotals{}

	s := New(discardLogger(), counter, totals, time.Second)
	s.syncOnce(context.Background())
	require.Equal(t, int64(5), totals.rows[totalKey{7, "Red"}])

	counter.scores[7]["Red"] = 9
	s.syncOnce(context.Background())
	assert.Equal(t, int64(9), totals.rows[totalKey{7, "Red"}])
}

func TestSyncOnce_CounterFailureIsNotFatal(t *testing.T) {
	counter := &fakeCounter{err: errors.New("connection refused")}
	totals := &fakeTotals{}

	s := New(discardLogger(), counter, totals, time.Second)
	s.syncOnce(context.Background())

	assert.Empty(t, totals.rows)
}

func TestSyncOnce_PartialFailureContinues(t *testing.T) {
	counter := &fakeCounter{scores: map[int64]map[string]int64{
		7: {"Red": 5, "Blue": 3},
	}}
	totals := &fakeTotals{failOn: totalKey{7, "Red"}}

	s := New(discardLogger(), counter, totals, time.Second)
	s.syncOnce(context.Background())

	assert.Equal(t, int64(3), totals.rows[totalKey{7, "Blue"}])
	_, ok := totals.rows[totalKey{7, "Red"}]
	assert.False(t, ok)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	counter := &fakeCounter{scores: map[int64]map[string]int64{7: {"Red": 1}}}
	totals := &fakeTotals{}

	s := New(discardLogger(), counter, totals, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("syncer did not stop after cancel")
	}

	totals.mu.Lock()
	defer totals.mu.Unlock()
	assert.Equal(t, int64(1), totals.rows[totalKey{7, "Red"}])
}

func TestNew_DefaultInterval(t *testing.T) {
	s := New(discardLogger(), &fakeCounter{}, &fakeTotals{}, 0)
	assert.Equal(t, 10*time.Second, s.interval)
}
