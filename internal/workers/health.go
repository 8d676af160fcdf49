package workers

import (
	"context"
	"sync"
	"time"

	"github.com/vaultward/vaultward/internal/adapter"
	"github.com/vaultward/vaultward/internal/logger"
)

type healthWorker struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu        sync.Mutex
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	reachable bool
}

// NewHealthWorker creates a worker that probes the server health endpoint on
// a ticker and logs reachability transitions. The worker is idle until Start
// is called. It only observes: vault operations are never retried from here.
func NewHealthWorker(serverAdapter adapter.ServerAdapter, log *logger.Logger) Worker {
	return &healthWorker{adapter: serverAdapter, logger: log, reachable: true}
}

// Start stops any previously running probe loop, then launches a background
// goroutine that calls Health every interval. If interval is zero or negative
// it defaults to 5 minutes. The goroutine exits when ctx is cancelled or Stop
// is called.
func (w *healthWorker) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the worker is not running.
func (w *healthWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *healthWorker) probe(ctx context.Context) {
	err := w.adapter.Health(ctx)

	w.mu.Lock()
	wasReachable := w.reachable
	w.reachable = err == nil
	w.mu.Unlock()

	// Only transitions are logged, a stable state stays quiet.
	switch {
	case err != nil && wasReachable:
		w.logger.Warn().Err(err).Msg("server became unreachable")
	case err == nil && !wasReachable:
		w.logger.Info().Msg("server is reachable again")
	}
}
