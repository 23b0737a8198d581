package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
}

func NewWorker(sm *game.SessionManager, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	return &Worker{SessionManager: sm, Interval: interval}
}

// Start runs one cleanup right away and then one per interval until ctx
// is cancelled. It blocks; run it in its own goroutine.
func (w *Worker) Start(ctx context.Context) {
	log.Println("[CLEANUP] Background worker started")
	w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("[CLEANUP] Background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	removed := w.SessionManager.CleanupOldSessions(time.Now())
	if removed > 0 {
		log.Printf("[CLEANUP] Removed %d stale sessions, %d still active", removed, w.SessionManager.ActiveCount())
	}
}
