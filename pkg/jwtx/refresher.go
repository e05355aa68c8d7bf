package jwtx

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Source loads the current key set, from disk or the identity provider.
type Source func(ctx context.Context) (JWKS, error)

// FileSource reads the key set from path on every load.
func FileSource(path string) Source {
	return func(context.Context) (JWKS, error) { return LoadJWKSFile(path) }
}

// URLSource fetches the key set from url on every load.
func URLSource(url string) Source {
	return func(ctx context.Context) (JWKS, error) { return FetchJWKS(ctx, nil, url) }
}

// Refresher periodically reloads a KeySet so rotated signing keys are picked
// up without a restart. A failed reload keeps the previous keys.
type Refresher struct {
	Keys     *KeySet
	Source   Source
	Interval time.Duration
	Logger   *slog.Logger

	mu      sync.Mutex
	started bool
	stopped bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewRefresher creates a refresher for keys loaded from src.
func NewRefresher(keys *KeySet, src Source, interval time.Duration, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{
		Keys:     keys,
		Source:   src,
		Interval: interval,
		Logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Load performs a single synchronous reload.
func (r *Refresher) Load(ctx context.Context) error {
	set, err := r.Source(ctx)
	if err != nil {
		return err
	}
	if err := r.Keys.Reset(set); err != nil {
		return err
	}
	r.Logger.Debug("jwks reloaded", "keys", r.Keys.Len())
	return nil
}

// Start begins the background reload loop. Call Stop to end it. Starting
// twice, or after Stop, does nothing.
func (r *Refresher) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started || r.stopped || r.Interval <= 0 {
		return
	}
	r.started = true
	go r.run()
	r.Logger.Info("jwks refresher started", "interval", r.Interval)
}

// Stop shuts the loop down and waits for any in-flight reload to finish.
// It is safe to call more than once and on a refresher that never started.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	running := r.started
	close(r.stopCh)
	r.mu.Unlock()

	if running {
		<-r.doneCh
		r.Logger.Info("jwks refresher stopped")
	}
}

func (r *Refresher) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), r.Interval)
			if err := r.Load(ctx); err != nil {
				r.Logger.Warn("jwks reload failed, keeping previous keys", slog.Any("error", err))
			}
			cancel()
		case <-r.stopCh:
			return
		}
	}
}
