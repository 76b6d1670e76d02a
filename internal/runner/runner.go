// Package runner runs servers and background workers until the first
// failure or context cancellation.
package runner

//go:generate mockgen -source=runner.go -destination=runner_mock.go -package=runner

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ShutdownTimeout bounds the graceful shutdown of each server.
const ShutdownTimeout = 5 * time.Second

// Worker is a background task that runs until ctx is done.
type Worker interface {
	Start(ctx context.Context) error
}

// Server is a listener with graceful shutdown.
type Server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// Runner coordinates running goroutines and error handling.
type Runner struct {
	mu      sync.Mutex
	workers []Worker
	servers []Server
	wg      sync.WaitGroup
	errCh   chan error
	logger  *zap.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{
		errCh:  make(chan error, 1),
		logger: logger,
	}
}

// AddWorker adds a Worker to be run later.
func (r *Runner) AddWorker(worker Worker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workers = append(r.workers, worker)
}

// AddServer adds a Server to be run later.
func (r *Runner) AddServer(srv Server) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.servers = append(r.servers, srv)
}

// Run starts every worker and server and blocks until ctx is done, one of
// them fails or all of them return. Everything still running is stopped
// before Run returns the first error.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	workers := append([]Worker(nil), r.workers...)
	servers := append([]Server(nil), r.servers...)
	r.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, w := range workers {
		r.runWorker(ctx, w)
	}
	for _, srv := range servers {
		r.runServer(ctx, srv)
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-r.errCh:
		r.logger.Error("runner stopping", zap.Error(err))
	case <-done:
	}

	cancel()
	<-done
	if err == nil {
		select {
		case err = <-r.errCh:
		default:
		}
	}
	return err
}

func (r *Runner) runWorker(ctx context.Context, worker Worker) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := worker.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			r.sendError(err)
		}
	}()
}

func (r *Runner) runServer(ctx context.Context, srv Server) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		serverErrCh := make(chan error, 1)
		go func() {
			serverErrCh <- srv.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				r.sendError(err)
			}
			if err := <-serverErrCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
				r.sendError(err)
			}
		case err := <-serverErrCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				r.sendError(err)
			}
		}
	}()
}

// sendError keeps the first error only.
func (r *Runner) sendError(err error) {
	select {
	case r.errCh <- err:
	default:
	}
}
