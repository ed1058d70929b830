package pipeline

import (
	"context"

	"github.com/NandoXu/ig-reels-analytics/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=pipeline.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// Scrape runs the full extraction sequence for one post and returns the
	// resulting record. The record is always returned, failed stages are
	// recorded in its error trail.
	Scrape(ctx context.Context, url, username string) *domain.PostResult

	// ScrapeAndStore runs Scrape and upserts the record. The record is
	// returned even when the upsert fails.
	ScrapeAndStore(ctx context.Context, url, username string) (*domain.PostResult, error)

	// Batch scrapes and stores each URL strictly in order, one post fully
	// persisted before the next begins. Stops early only on context
	// cancellation.
	Batch(ctx context.Context, urls []string, username string) ([]*domain.PostResult, error)
}
