// Package observability provides metric instruments for the naming engine.
package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// CacheMetrics holds instruments for the type metadata cache. A nil
// *CacheMetrics is valid and records nothing, so callers never need to
// branch on whether metrics were initialized.
type CacheMetrics struct {
	hits   metric.Int64Counter
	misses metric.Int64Counter
	size   metric.Int64UpDownCounter
}

// InitCacheMetrics initializes type metadata cache metrics. The instruments
// are no-ops unless the host process has installed a meter provider.
func InitCacheMetrics() (*CacheMetrics, error) {
	meter := otel.Meter("schema-inflect")

	hits, err := meter.Int64Counter(
		"typemeta.cache.hits",
		metric.WithDescription("Total number of type metadata cache hits"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache hit counter: %w", err)
	}

	misses, err := meter.Int64Counter(
		"typemeta.cache.misses",
		metric.WithDescription("Total number of type metadata cache misses"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache miss counter: %w", err)
	}

	size, err := meter.Int64UpDownCounter(
		"typemeta.cache.size",
		metric.WithDescription("Number of distinct type names held in the cache"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache size counter: %w", err)
	}

	return &CacheMetrics{
		hits:   hits,
		misses: misses,
		size:   size,
	}, nil
}

// RecordHit increments the cache hit counter.
func (m *CacheMetrics) RecordHit(ctx context.Context) {
	if m == nil {
		return
	}
	m.hits.Add(ctx, 1)
}

// RecordMiss increments the cache miss counter.
func (m *CacheMetrics) RecordMiss(ctx context.Context) {
	if m == nil {
		return
	}
	m.misses.Add(ctx, 1)
}

// RecordInsert increments the cache size counter. The cache never evicts,
// so there is no matching decrement.
func (m *CacheMetrics) RecordInsert(ctx context.Context) {
	if m == nil {
		return
	}
	m.size.Add(ctx, 1)
}
