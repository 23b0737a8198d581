package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
)

type discardConn struct{}

func (discardConn) SendMessage(string, domain.ServerMessage) error { return nil }

func TestWorkerRemovesStaleSessionsAndStops(t *testing.T) {
	sm := game.NewSessionManager(bot.NewCachedEngine(nil, 0), bot.DefaultDepths, 0, time.Minute)
	stale := sm.CreateSession("c1", "easy", false, discardConn{})
	stale.CreatedAt = time.Now().Add(-time.Hour)
	sm.CreateSession("c2", "easy", false, discardConn{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewWorker(sm, 10*time.Millisecond).Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for sm.ActiveCount() != 1 {
		select {
		case <-deadline:
			t.Fatalf("stale session was not cleaned up, %d active", sm.ActiveCount())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("worker did not stop after cancel")
	}
}

func TestNewWorkerDefaultsInterval(t *testing.T) {
	if w := NewWorker(nil, 0); w.Interval != time.Hour {
		t.Fatalf("expected default interval of 1h, got %s", w.Interval)
	}
}
