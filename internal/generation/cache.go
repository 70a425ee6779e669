package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// CachedGenerator wraps a Generator and keeps successful replies for a fixed
// TTL, keyed by the exact prompt text. Failed calls are never cached.
type CachedGenerator struct {
	next   Generator
	cache  *ristretto.Cache[string, string]
	ttl    time.Duration
	logger *slog.Logger
}

var _ Generator = (*CachedGenerator)(nil)

// NewCachedGenerator creates a CachedGenerator holding at most maxEntries replies.
func NewCachedGenerator(next Generator, ttl time.Duration, maxEntries int, logger *slog.Logger) (*CachedGenerator, error) {
	if next == nil {
		return nil, fmt.Errorf("%w: next generator cannot be nil", ErrInvalidConfig)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: cache ttl must be positive", ErrInvalidConfig)
	}
	if maxEntries <= 0 {
		return nil, fmt.Errorf("%w: cache size must be positive", ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters:        int64(maxEntries) * 10,
		MaxCost:            int64(maxEntries),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &CachedGenerator{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "generation_cache")),
	}, nil
}

// Generate returns a cached reply for prompt when one is present, otherwise it
// calls the wrapped generator and caches a successful reply.
func (g *CachedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if reply, ok := g.cache.Get(prompt); ok {
		g.logger.DebugContext(ctx, "generation cache hit", slog.Int("prompt_length", len(prompt)))
		return reply, nil
	}

	reply, err := g.next.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	g.cache.SetWithTTL(prompt, reply, 1, g.ttl)
	g.cache.Wait()

	return reply, nil
}

// Close releases the cache's background goroutines.
func (g *CachedGenerator) Close() {
	g.cache.Close()
}
