package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/newskeeper/newskeeper_backend/internal/apperrors"
	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portsrepo "github.com/newskeeper/newskeeper_backend/internal/core/ports/repositories"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/utils"
)

// everythingDateLayout produces the non-padded YYYY-M-D bound the news API
// accepts for the `to` parameter.
const everythingDateLayout = "2006-1-2"

type historyService struct {
	news        portssvc.NewsSvcFacade
	userRepo    portsrepo.UserRepository
	articleRepo portsrepo.ArticleRepository
	now         func() time.Time
}

// NewHistoryService creates the history service over the news port and the
// account/article repositories.
func NewHistoryService(news portssvc.NewsSvcFacade, userRepo portsrepo.UserRepository, articleRepo portsrepo.ArticleRepository) portssvc.HistorySvcFacade {
	return &historyService{
		news:        news,
		userRepo:    userRepo,
		articleRepo: articleRepo,
		now:         time.Now,
	}
}

func (s *historyService) SearchHeadlines(ctx context.Context, category string) (*domain.NewsResponse, error) {
	return s.news.TopHeadlines(ctx, category)
}

func (s *historyService) SearchEverything(ctx context.Context, query string) (*domain.NewsResponse, error) {
	// The date bound only applies to an actual search; the bare listing is an
	// unfiltered passthrough.
	to := ""
	if query != "" {
		to = s.now().Format(everythingDateLayout)
	}
	return s.news.Everything(ctx, query, to)
}

func (s *historyService) SaveHeadlines(ctx context.Context, userID, category string) (*domain.NewsResponse, error) {
	resp, err := s.news.TopHeadlines(ctx, category)
	if err != nil {
		return nil, err
	}
	if err := s.appendAll(ctx, userID, domain.CategoryHeadlines, category, resp.Articles); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *historyService) SaveEverything(ctx context.Context, userID, query string) (*domain.NewsResponse, error) {
	resp, err := s.news.Everything(ctx, query, s.now().Format(everythingDateLayout))
	if err != nil {
		return nil, err
	}
	if err := s.appendAll(ctx, userID, domain.CategoryEverything, query, resp.Articles); err != nil {
		return nil, err
	}
	return resp, nil
}

// appendAll persists one search's results as a single atomic batch append.
func (s *historyService) appendAll(ctx context.Context, userID string, category domain.ArticleCategory, query string, articles []domain.NewsArticle) error {
	if len(articles) == 0 {
		return nil
	}

	tag := utils.Capitalize(query)
	savedAt := s.now()
	saved := make([]domain.SavedArticle, 0, len(articles))
	for _, a := range articles {
		saved = append(saved, domain.SavedArticle{
			ArticleID:   uuid.NewString(),
			UserID:      userID,
			Category:    category,
			Tag:         tag,
			Title:       a.Title,
			Content:     a.Content,
			Description: a.Description,
			URL:         a.URL,
			URLToImage:  a.URLToImage,
			Author:      a.Author,
			PublishedAt: a.PublishedAt,
			Source:      a.Source,
			SavedAt:     savedAt,
		})
	}

	if err := s.articleRepo.AppendArticles(ctx, saved); err != nil {
		return fmt.Errorf("failed to save search results: %w", err)
	}
	return nil
}

func (s *historyService) ListHistory(ctx context.Context, userID string, category domain.ArticleCategory) ([]domain.SavedArticle, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}
	articles, err := s.articleRepo.ListByUserAndCategory(ctx, userID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return articles, nil
}

func (s *historyService) DeleteOne(ctx context.Context, userID string, category domain.ArticleCategory, articleID string) error {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return err
	}
	if err := s.articleRepo.DeleteOne(ctx, userID, category, articleID); err != nil {
		return fmt.Errorf("failed to delete saved article: %w", err)
	}
	return nil
}

func (s *historyService) DeleteAll(ctx context.Context, userID string, category domain.ArticleCategory) error {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return err
	}
	if err := s.articleRepo.DeleteAllByCategory(ctx, userID, category); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *historyService) ensureUserExists(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
