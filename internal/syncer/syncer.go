package syncer

import (
	"context"
	"log/slog"
	"time"

	"github.com/ANSH5252/LivePulse/utils"
)

type CounterReader interface {
	AllScores(ctx context.Context) (map[int64]map[string]int64, error)
}

type TotalsStorage interface {
	UpsertTotal(ctx context.Context, pollID int64, label string, total int64) error
}

// Syncer periodically folds the hot counter store into durable totals so
// aggregates survive a counter restart. Writes are idempotent last-write-wins
// overwrites, so it needs no coordination with the request path.
type Syncer struct {
	log      *slog.Logger
	counter  CounterReader
	totals   TotalsStorage
	interval time.Duration
}

func New(log *slog.Logger, counter CounterReader, totals TotalsStorage, interval time.Duration) *Syncer {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Syncer{log: log, counter: counter, totals: totals, interval: interval}
}

// Run ticks until ctx is done. A failed cycle is logged and retried on the
// next tick; nothing here is ever fatal to the process.
func (s *Syncer) Run(ctx context.Context) error {
	log := s.log.With(slog.String("op", "syncer.Run"))
	log.Info("reconciliation worker started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("reconciliation worker stopped")
			return ctx.Err()
		case <-ticker.C:
			s.syncOnce(ctx)
		}
	}
}

func (s *Syncer) syncOnce(ctx context.Context) {
	const op = "syncer.syncOnce"

	log := s.log.With(slog.String("op", op))

	all, err := s.counter.AllScores(ctx)
	if err != nil {
		log.Warn("counter store unreachable, retrying next cycle", utils.Err(err))
		return
	}
	if len(all) == 0 {
		log.Debug("no counters to reconcile")
		return
	}

	var synced int
	for pollID, scores := range all {
		for label, total := range scores {
			if err := s.totals.UpsertTotal(ctx, pollID, label, total); err != nil {
				log.Warn("failed to upsert total",
					slog.Int64("pollID", pollID), slog.String("label", label), utils.Err(err))
				continue
			}
			synced++
		}
	}

	log.Debug("reconciled counters to durable totals", slog.Int("rows", synced))
}
