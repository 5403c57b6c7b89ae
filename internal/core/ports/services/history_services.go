package services

import (
	"context"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
)

// HistorySvcFacade exposes the news search plus per-user article history
// operations. The headlines and everything collections share one contract.
type HistorySvcFacade interface {
	// SearchHeadlines proxies a top-headlines search. No persistence.
	SearchHeadlines(ctx context.Context, category string) (*domain.NewsResponse, error)

	// SearchEverything proxies a free-text search bounded at today's date.
	// No persistence.
	SearchEverything(ctx context.Context, query string) (*domain.NewsResponse, error)

	// SaveHeadlines searches by category and appends every result to the
	// user's headlines collection, tagged with the capitalized category.
	// Returns the unmodified search response.
	SaveHeadlines(ctx context.Context, userID, category string) (*domain.NewsResponse, error)

	// SaveEverything is SaveHeadlines for the everything collection, keyed by
	// free-text query.
	SaveEverything(ctx context.Context, userID, query string) (*domain.NewsResponse, error)

	// ListHistory returns the user's collection in insertion order.
	// Fails with apperrors.ErrNotFound when the account is absent.
	ListHistory(ctx context.Context, userID string, category domain.ArticleCategory) ([]domain.SavedArticle, error)

	// DeleteOne removes a single saved entry; removing an absent id succeeds.
	// Fails with apperrors.ErrNotFound when the account is absent.
	DeleteOne(ctx context.Context, userID string, category domain.ArticleCategory, articleID string) error

	// DeleteAll empties the collection. Idempotent.
	// Fails with apperrors.ErrNotFound when the account is absent.
	DeleteAll(ctx context.Context, userID string, category domain.ArticleCategory) error
}
