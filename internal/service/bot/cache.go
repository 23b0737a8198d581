package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

const moveKeyPrefix = "c4:move:"

// CacheRepository is the subset of a key-value store used to memoise
// searches. Redis satisfies it; nil disables caching.
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

type cachedMove struct {
	Column int `json:"column"`
	Value  int `json:"value"`
}

// CachedEngine wraps the searcher with a move cache. A search result
// depends only on the board and the depth, so cached answers never go
// stale; the TTL only bounds memory.
type CachedEngine struct {
	cache CacheRepository // Optional, can be nil
	ttl   time.Duration
}

func NewCachedEngine(cache CacheRepository, ttl time.Duration) *CachedEngine {
	return &CachedEngine{cache: cache, ttl: ttl}
}

func moveKey(board *domain.Board, depth int) string {
	return fmt.Sprintf("%s%d:%s", moveKeyPrefix, depth, board.Key())
}

// BestMove returns the engine's move, consulting the cache first.
// Cache failures are logged and fall through to a fresh search.
func (e *CachedEngine) BestMove(ctx context.Context, board domain.Board, depth int) (Move, error) {
	if depth < 0 {
		return Move{}, domain.ErrNegativeDepth
	}

	key := moveKey(&board, depth)
	if e.cache != nil {
		data, err := e.cache.Get(ctx, key)
		if err == nil && data != "" {
			var cm cachedMove
			if err := json.Unmarshal([]byte(data), &cm); err == nil && board.IsLegal(cm.Column) {
				return Move{Column: cm.Column, Value: cm.Value}, nil
			}
			log.Printf("[CACHE] Discarding unreadable entry for %s", key)
		}
	}

	searcher := NewSearcher()
	start := time.Now()
	move, err := searcher.Search(board, depth)
	if err != nil {
		return Move{}, err
	}
	log.Printf("[BOT] depth=%d column=%d value=%d nodes=%d cutoffs=%d took=%s",
		depth, move.Column, move.Value, searcher.Stats.Nodes, searcher.Stats.Cutoffs, time.Since(start))

	if e.cache != nil {
		data, err := json.Marshal(cachedMove{Column: move.Column, Value: move.Value})
		if err == nil {
			if cacheErr := e.cache.Set(ctx, key, data, e.ttl); cacheErr != nil {
				log.Printf("[CACHE] Warning: Failed to cache move: %v", cacheErr)
			}
		}
	}

	return move, nil
}
