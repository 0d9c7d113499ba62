package fetcher

import (
	"context"
	"errors"
	"time"

	"wikiquiz/internal/domain"
	"wikiquiz/internal/logger"

	"go.uber.org/zap"
)

const documentKeyPrefix = "article:doc:"

// CachingFetcher is a read-through cache over an ArticleFetcher. It caches
// raw upstream documents only, never generated quizzes, so every pipeline
// execution still regenerates and persists a fresh record. Cache failures
// degrade to a plain fetch.
type CachingFetcher struct {
	next  domain.ArticleFetcher
	cache domain.Cache
	ttl   time.Duration
}

func NewCachingFetcher(next domain.ArticleFetcher, cache domain.Cache, ttl time.Duration) *CachingFetcher {
	return &CachingFetcher{next: next, cache: cache, ttl: ttl}
}

// Fetch implements domain.ArticleFetcher
func (f *CachingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	key := documentKeyPrefix + url

	doc, err := f.cache.Get(ctx, key)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Warn("Document cache read failed, falling back to fetch",
			zap.String("url", url), zap.Error(err))
	}

	doc, err = f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if setErr := f.cache.Set(ctx, key, doc, f.ttl); setErr != nil {
		logger.Get().Warn("Document cache write failed",
			zap.String("url", url), zap.Error(setErr))
	}
	return doc, nil
}

var _ domain.ArticleFetcher = (*CachingFetcher)(nil)
