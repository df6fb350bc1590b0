package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rfnaufal/snake-spectacle/internal/config"
	"github.com/rfnaufal/snake-spectacle/internal/store"
	"github.com/rfnaufal/snake-spectacle/internal/websocket"
)

// BroadcastWorker periodically pushes a full leaderboard snapshot to
// connected spectators, so a watcher that joined between score submissions
// still converges on the current standings. It only reads from the store;
// live-player fixtures and scores are never touched here.
type BroadcastWorker struct {
	store   *store.Store
	hub     *websocket.Hub
	config  *config.BroadcastConfig
	logger  *slog.Logger
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewBroadcastWorker creates a new broadcast worker
func NewBroadcastWorker(
	store *store.Store,
	hub *websocket.Hub,
	cfg *config.BroadcastConfig,
	logger *slog.Logger,
) *BroadcastWorker {
	return &BroadcastWorker{
		store:  store,
		hub:    hub,
		config: cfg,
		logger: logger,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start begins the background broadcast process
func (w *BroadcastWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info("broadcast worker started", "interval", w.config.Interval)

	go w.run(ctx)
	return nil
}

// Stop stops the background broadcast process
func (w *BroadcastWorker) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	w.mu.Lock()
	w.running = false
	w.mu.Unlock()

	w.logger.Info("broadcast worker stopped")
	return nil
}

// run is the main worker loop
func (w *BroadcastWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.broadcast()
		}
	}
}

// broadcast pushes the current standings to the hub
func (w *BroadcastWorker) broadcast() {
	if w.hub.GetTotalConnections() == 0 {
		return
	}

	entries := w.store.Leaderboard("")
	w.hub.BroadcastLeaderboard(entries)
	w.logger.Debug("leaderboard snapshot broadcast", "entries", len(entries))
}
