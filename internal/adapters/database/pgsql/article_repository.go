package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portsrepo "github.com/newskeeper/newskeeper_backend/internal/core/ports/repositories"
)

type ArticleRepository struct {
	db *pgxpool.Pool
}

func NewArticleRepository(db *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{db: db}
}

var _ portsrepo.ArticleRepository = (*ArticleRepository)(nil)

const insertArticleQuery = `
    INSERT INTO saved_articles
        (article_id, user_id, category, tag, title, content, description, url, url_to_image, author, published_at, source_id, source_name, saved_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`

// AppendArticles writes the whole batch inside one transaction so a request
// either saves every article or none of them.
func (r *ArticleRepository) AppendArticles(ctx context.Context, articles []domain.SavedArticle) error {
	if len(articles) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin append transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, a := range articles {
		batch.Queue(insertArticleQuery,
			a.ArticleID,
			a.UserID,
			string(a.Category),
			a.Tag,
			a.Title,
			a.Content,
			a.Description,
			a.URL,
			a.URLToImage,
			a.Author,
			a.PublishedAt,
			a.Source.ID,
			a.Source.Name,
			a.SavedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range articles {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to append article batch: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close article batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit article batch: %w", err)
	}
	return nil
}

func (r *ArticleRepository) ListByUserAndCategory(ctx context.Context, userID string, category domain.ArticleCategory) ([]domain.SavedArticle, error) {
	// seq is assigned by the database at insert time, so ordering by it
	// reproduces save order.
	query := `
        SELECT article_id, user_id, category, tag, title, content, description, url, url_to_image, author, published_at, source_id, source_name, saved_at
        FROM saved_articles
        WHERE user_id = $1 AND category = $2
        ORDER BY seq;
    `
	rows, err := r.db.Query(ctx, query, userID, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to query saved articles: %w", err)
	}
	defer rows.Close()

	articles := []domain.SavedArticle{}
	for rows.Next() {
		var (
			a        domain.SavedArticle
			sourceID sql.NullString
		)
		err := rows.Scan(
			&a.ArticleID,
			&a.UserID,
			&a.Category,
			&a.Tag,
			&a.Title,
			&a.Content,
			&a.Description,
			&a.URL,
			&a.URLToImage,
			&a.Author,
			&a.PublishedAt,
			&sourceID,
			&a.Source.Name,
			&a.SavedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved article row: %w", err)
		}
		if sourceID.Valid {
			id := sourceID.String
			a.Source.ID = &id
		}
		articles = append(articles, a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating saved article rows: %w", rows.Err())
	}
	return articles, nil
}

func (r *ArticleRepository) DeleteOne(ctx context.Context, userID string, category domain.ArticleCategory, articleID string) error {
	// Zero rows affected is fine: the entry may already be gone.
	query := `DELETE FROM saved_articles WHERE user_id = $1 AND category = $2 AND article_id = $3;`
	if _, err := r.db.Exec(ctx, query, userID, string(category), articleID); err != nil {
		return fmt.Errorf("failed to delete saved article: %w", err)
	}
	return nil
}

func (r *ArticleRepository) DeleteAllByCategory(ctx context.Context, userID string, category domain.ArticleCategory) error {
	query := `DELETE FROM saved_articles WHERE user_id = $1 AND category = $2;`
	if _, err := r.db.Exec(ctx, query, userID, string(category)); err != nil {
		return fmt.Errorf("failed to clear saved articles: %w", err)
	}
	return nil
}
