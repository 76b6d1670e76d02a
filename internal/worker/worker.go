// Package worker holds the background tasks of the server: seed restore,
// tier coalescing and store health checks.
package worker

//go:generate mockgen -source=worker.go -destination=worker_mock.go -package=worker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sbilibin2017/gophpowa/internal/models"
)

// SeedReader lists the records of a seed file.
type SeedReader interface {
	List(ctx context.Context) ([]models.SeedRecord, error)
}

// SnapshotWriter stores servers, query texts and snapshots.
type SnapshotWriter interface {
	Save(ctx context.Context, family models.Family, snaps ...models.Snapshot) error
	SaveServer(ctx context.Context, caps models.CapabilitySet) error
	SaveStatement(ctx context.Context, st models.StatementText) error
}

// Coalescer compacts the current tail of a store into historical ranges.
type Coalescer interface {
	Coalesce(ctx context.Context, cutoff time.Time) (int, error)
}

// Pinger checks a store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CoalesceObserver records coalescing results.
type CoalesceObserver interface {
	ObserveCoalesce(ranges int)
}

// Restore loads every seed record into the store. Snapshots are batched
// per family in file order. It returns the number of snapshots stored.
func Restore(ctx context.Context, reader SeedReader, writer SnapshotWriter) (int, error) {
	records, err := reader.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("read seed: %w", err)
	}

	batches := make(map[models.Family][]models.Snapshot)
	var order []models.Family
	for _, rec := range records {
		if rec.Server != nil {
			if err := writer.SaveServer(ctx, *rec.Server); err != nil {
				return 0, err
			}
		}
		if rec.Statement != nil {
			if err := writer.SaveStatement(ctx, *rec.Statement); err != nil {
				return 0, err
			}
		}
		if rec.Snapshot == nil {
			continue
		}
		if _, ok := batches[rec.Family]; !ok {
			order = append(order, rec.Family)
		}
		batches[rec.Family] = append(batches[rec.Family], *rec.Snapshot)
	}

	stored := 0
	for _, family := range order {
		if err := writer.Save(ctx, family, batches[family]...); err != nil {
			return stored, err
		}
		stored += len(batches[family])
	}
	return stored, nil
}

// CoalesceWorker periodically moves snapshots older than a retention age
// from the current tail into historical ranges.
type CoalesceWorker struct {
	store    Coalescer
	interval time.Duration
	age      time.Duration
	now      func() time.Time
	observer CoalesceObserver
	logger   *zap.Logger
}

// CoalesceOpt configures a CoalesceWorker.
type CoalesceOpt func(*CoalesceWorker)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) CoalesceOpt {
	return func(w *CoalesceWorker) {
		w.now = now
	}
}

// WithCoalesceObserver reports every pass to o.
func WithCoalesceObserver(o CoalesceObserver) CoalesceOpt {
	return func(w *CoalesceWorker) {
		w.observer = o
	}
}

// NewCoalesceWorker creates a worker that runs every interval and coalesces
// snapshots older than age.
func NewCoalesceWorker(
	store Coalescer,
	interval, age time.Duration,
	logger *zap.Logger,
	opts ...CoalesceOpt,
) *CoalesceWorker {
	w := &CoalesceWorker{
		store:    store,
		interval: interval,
		age:      age,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start runs passes until ctx is done. A failed pass stops the worker.
func (w *CoalesceWorker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := w.pass(ctx); err != nil {
				return err
			}
		}
	}
}

func (w *CoalesceWorker) pass(ctx context.Context) error {
	cutoff := w.now().Add(-w.age)
	n, err := w.store.Coalesce(ctx, cutoff)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		w.logger.Error("coalesce failed", zap.Time("cutoff", cutoff), zap.Error(err))
		return fmt.Errorf("coalesce: %w", err)
	}
	if w.observer != nil {
		w.observer.ObserveCoalesce(n)
	}
	w.logger.Debug("coalesced", zap.Time("cutoff", cutoff), zap.Int("ranges", n))
	return nil
}

// HealthWorker pings the store on an interval and reports the result.
type HealthWorker struct {
	store     Pinger
	interval  time.Duration
	reporters []func(up bool)
	logger    *zap.Logger
}

// NewHealthWorker creates a worker that reports every check to reporters.
func NewHealthWorker(store Pinger, interval time.Duration, logger *zap.Logger, reporters ...func(up bool)) *HealthWorker {
	return &HealthWorker{
		store:     store,
		interval:  interval,
		reporters: reporters,
		logger:    logger,
	}
}

// Start checks once immediately, then on every tick until ctx is done.
func (w *HealthWorker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := w.check(ctx, nil)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			last = w.check(ctx, &last)
		}
	}
}

func (w *HealthWorker) check(ctx context.Context, last *bool) bool {
	err := w.store.Ping(ctx)
	up := err == nil
	if ctx.Err() != nil {
		if last != nil {
			return *last
		}
		return up
	}
	if last == nil || *last != up {
		if up {
			w.logger.Info("snapshot store is up")
		} else {
			w.logger.Error("snapshot store is down", zap.Error(err))
		}
	}
	for _, report := range w.reporters {
		report(up)
	}
	return up
}
