package services

import (
	"context"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
)

// NewsSvcFacade is the outbound port to the external news search API.
// Failures surface as apperrors.ErrUpstream.
type NewsSvcFacade interface {
	// TopHeadlines fetches English top headlines, optionally narrowed to a
	// category.
	TopHeadlines(ctx context.Context, category string) (*domain.NewsResponse, error)

	// Everything runs a free-text search ordered by relevance, bounded above
	// by the `to` publication date (YYYY-M-D). Empty query lists everything.
	Everything(ctx context.Context, query, to string) (*domain.NewsResponse, error)
}
