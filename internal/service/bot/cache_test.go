package bot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

type memoryCache struct {
	data    map[string]string
	gets    int
	sets    int
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.sets++
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	default:
		m.data[key] = fmt.Sprint(v)
	}
	return nil
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	m.gets++
	if m.failGet {
		return "", errors.New("connection refused")
	}
	v, ok := m.data[key]
	if !ok {
		return "", errors.New("nil")
	}
	return v, nil
}

func TestCachedEngineStoresAndReuses(t *testing.T) {
	cache := newMemoryCache()
	engine := NewCachedEngine(cache, time.Minute)
	ctx := context.Background()
	board := domain.NewBoard()

	first, err := engine.BestMove(ctx, board, 2)
	if err != nil {
		t.Fatalf("best move: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	second, err := engine.BestMove(ctx, board, 2)
	if err != nil {
		t.Fatalf("best move: %v", err)
	}
	if second != first || cache.sets != 1 {
		t.Fatalf("expected cached %+v without rewrite, got %+v (sets=%d)", first, second, cache.sets)
	}

	direct, err := NewSearcher().Search(board, 2)
	if err != nil || direct != first {
		t.Fatalf("cached move %+v differs from direct search %+v (%v)", first, direct, err)
	}
}

func TestCachedEngineKeysByDepth(t *testing.T) {
	cache := newMemoryCache()
	engine := NewCachedEngine(cache, time.Minute)
	board := domain.NewBoard()
	if _, err := engine.BestMove(context.Background(), board, 1); err != nil {
		t.Fatalf("best move: %v", err)
	}
	if _, err := engine.BestMove(context.Background(), board, 2); err != nil {
		t.Fatalf("best move: %v", err)
	}
	if len(cache.data) != 2 {
		t.Fatalf("expected separate entries per depth, got %d", len(cache.data))
	}
}

func TestCachedEngineIgnoresBadEntries(t *testing.T) {
	cache := newMemoryCache()
	board := domain.NewBoard()
	cache.data[moveKey(&board, 1)] = "not json"

	move, err := NewCachedEngine(cache, time.Minute).BestMove(context.Background(), board, 1)
	if err != nil {
		t.Fatalf("best move: %v", err)
	}
	if move.Column != domain.CenterColumn {
		t.Fatalf("expected fresh search result, got %+v", move)
	}
}

func TestCachedEngineSurvivesCacheOutage(t *testing.T) {
	cache := newMemoryCache()
	cache.failGet = true
	move, err := NewCachedEngine(cache, time.Minute).BestMove(context.Background(), domain.NewBoard(), 1)
	if err != nil {
		t.Fatalf("best move: %v", err)
	}
	if move.Column != domain.CenterColumn {
		t.Fatalf("unexpected move %+v", move)
	}
}

func TestCachedEngineWithoutCache(t *testing.T) {
	engine := NewCachedEngine(nil, 0)
	if _, err := engine.BestMove(context.Background(), domain.NewBoard(), -2); !errors.Is(err, domain.ErrNegativeDepth) {
		t.Fatalf("expected ErrNegativeDepth, got %v", err)
	}
	move, err := engine.BestMove(context.Background(), domain.NewBoard(), 1)
	if err != nil || move.Column != domain.CenterColumn {
		t.Fatalf("unexpected result %+v %v", move, err)
	}
}

func TestDifficultyDepths(t *testing.T) {
	tests := map[string]int{
		"easy":   DefaultDepths.Easy,
		"medium": DefaultDepths.Medium,
		"hard":   DefaultDepths.Hard,
		"":       DefaultDepths.Medium,
		"insane": DefaultDepths.Medium,
	}
	for in, want := range tests {
		if got := DefaultDepths.For(ParseDifficulty(in)); got != want {
			t.Fatalf("%q: expected depth %d, got %d", in, want, got)
		}
	}
}
