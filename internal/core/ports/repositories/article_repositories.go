package repositories

import (
	"context"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
)

// ArticleRepository defines persistence operations for per-user history
// collections.
type ArticleRepository interface {
	// AppendArticles persists every article in one atomic batch; on failure
	// the owning collection is left unchanged.
	AppendArticles(ctx context.Context, articles []domain.SavedArticle) error

	// ListByUserAndCategory returns the collection in insertion order,
	// most-recently-appended last.
	ListByUserAndCategory(ctx context.Context, userID string, category domain.ArticleCategory) ([]domain.SavedArticle, error)

	// DeleteOne removes the matching entry. Deleting an id that is not in the
	// collection is not an error.
	DeleteOne(ctx context.Context, userID string, category domain.ArticleCategory, articleID string) error

	// DeleteAllByCategory empties the collection. Idempotent.
	DeleteAllByCategory(ctx context.Context, userID string, category domain.ArticleCategory) error
}
