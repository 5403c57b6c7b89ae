package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/newskeeper/newskeeper_backend/internal/apperrors"
	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
)

type HistoryHandlerTestSuite struct {
	suite.Suite
	env    *testEnv
	cookie *http.Cookie
}

func (s *HistoryHandlerTestSuite) SetupTest() {
	s.env = newTestEnv()
	s.cookie = s.env.sessionCookie(&domain.User{UserID: "u1", Username: "robel"})
}

func TestHistoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryHandlerTestSuite))
}

func (s *HistoryHandlerTestSuite) TestGetHeadlines_PublicPassthrough() {
	s.env.mockHistory.SearchHeadlinesFn = func(ctx context.Context, category string) (*domain.NewsResponse, error) {
		s.Empty(category)
		return &domain.NewsResponse{Status: "ok", TotalResults: 1, Articles: []domain.NewsArticle{{Title: "Top story"}}}, nil
	}

	w := s.env.do(httptest.NewRequest(http.MethodGet, "/headlines", nil))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Top story")
}

func (s *HistoryHandlerTestSuite) TestGetHeadlines_UpstreamFailure() {
	s.env.mockHistory.SearchHeadlinesFn = func(ctx context.Context, category string) (*domain.NewsResponse, error) {
		return nil, apperrors.ErrUpstream
	}

	w := s.env.do(httptest.NewRequest(http.MethodGet, "/headlines", nil))

	s.Equal(http.StatusBadGateway, w.Code)
}

func (s *HistoryHandlerTestSuite) TestSearchHeadlines_AnonymousDoesNotSave() {
	s.env.mockHistory.SaveHeadlinesFn = func(ctx context.Context, userID, category string) (*domain.NewsResponse, error) {
		s.Fail("anonymous searches must not reach the history")
		return nil, nil
	}

	req := httptest.NewRequest(http.MethodPost, "/headlines", strings.NewReader(`{"searchHeadlines":"sports"}`))
	req.Header.Set("Content-Type", "application/json")
	w := s.env.do(req)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HistoryHandlerTestSuite) TestSearchHeadlines_SavesForCaller() {
	s.env.mockHistory.SaveHeadlinesFn = func(ctx context.Context, userID, category string) (*domain.NewsResponse, error) {
		s.Equal("u1", userID)
		s.Equal("sports", category)
		return &domain.NewsResponse{Status: "ok", TotalResults: 1, Articles: []domain.NewsArticle{{Title: "Match report"}}}, nil
	}

	req := httptest.NewRequest(http.MethodPost, "/headlines", strings.NewReader(`{"searchHeadlines":"sports"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(s.cookie)
	w := s.env.do(req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Match report")
}

func (s *HistoryHandlerTestSuite) TestSearchHeadlines_RejectsUnknownCategory() {
	s.env.mockHistory.SaveHeadlinesFn = func(ctx context.Context, userID, category string) (*domain.NewsResponse, error) {
		s.Fail("an invalid category must not reach the service")
		return nil, nil
	}

	req := httptest.NewRequest(http.MethodPost, "/headlines", strings.NewReader(`{"searchHeadlines":"cooking"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(s.cookie)
	w := s.env.do(req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HistoryHandlerTestSuite) TestSearchEverything_SavesForCaller() {
	s.env.mockHistory.SaveEverythingFn = func(ctx context.Context, userID, query string) (*domain.NewsResponse, error) {
		s.Equal("u1", userID)
		s.Equal("climate change", query)
		return &domain.NewsResponse{Status: "ok"}, nil
	}

	req := httptest.NewRequest(http.MethodPost, "/everything", strings.NewReader(`{"searchEverything":"climate change"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(s.cookie)
	w := s.env.do(req)

	s.Equal(http.StatusOK, w.Code)
}

func (s *HistoryHandlerTestSuite) TestListHistory_RequiresSession() {
	s.env.mockHistory.ListHistoryFn = func(ctx context.Context, userID string, category domain.ArticleCategory) ([]domain.SavedArticle, error) {
		s.Fail("anonymous requests must be rejected before the store is read")
		return nil, nil
	}

	for _, path := range []string{"/headlines/history", "/everything/history"} {
		w := s.env.do(httptest.NewRequest(http.MethodGet, path, nil))
		s.Equal(http.StatusUnauthorized, w.Code, "GET %s", path)
		s.JSONEq(`{"error":"Not authenticated"}`, w.Body.String())
	}
}

func (s *HistoryHandlerTestSuite) TestListHistory_ReturnsCallersCollection() {
	s.env.mockHistory.ListHistoryFn = func(ctx context.Context, userID string, category domain.ArticleCategory) ([]domain.SavedArticle, error) {
		s.Equal("u1", userID)
		s.Equal(domain.CategoryHeadlines, category)
		return []domain.SavedArticle{
			{ArticleID: "a1", Tag: "Sports", Title: "First"},
			{ArticleID: "a2", Tag: "Sports", Title: "Second"},
		}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/headlines/history", nil)
	req.AddCookie(s.cookie)
	w := s.env.do(req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "First")
	s.Contains(w.Body.String(), "Second")
}

func (s *HistoryHandlerTestSuite) TestListHistory_EverythingCategoryRoute() {
	var gotCategory domain.ArticleCategory
	s.env.mockHistory.ListHistoryFn = func(ctx context.Context, userID string, category domain.ArticleCategory) ([]domain.SavedArticle, error) {
		gotCategory = category
		return nil, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/everything/history", nil)
	req.AddCookie(s.cookie)
	w := s.env.do(req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal(domain.CategoryEverything, gotCategory)
}

func (s *HistoryHandlerTestSuite) TestDeleteOne() {
	s.env.mockHistory.DeleteOneFn = func(ctx context.Context, userID string, category domain.ArticleCategory, articleID string) error {
		s.Equal("u1", userID)
		s.Equal(domain.CategoryHeadlines, category)
		s.Equal("a1", articleID)
		return nil
	}

	req := httptest.NewRequest(http.MethodDelete, "/headlines/history/delete/a1", nil)
	req.AddCookie(s.cookie)
	w := s.env.do(req)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true,"message":"Article deleted successfully"}`, w.Body.String())
}

func (s *HistoryHandlerTestSuite) TestDeleteAll() {
	s.env.mockHistory.DeleteAllFn = func(ctx context.Context, userID string, category domain.ArticleCategory) error {
		s.Equal("u1", userID)
		s.Equal(domain.CategoryEverything, category)
		return nil
	}

	req := httptest.NewRequest(http.MethodDelete, "/everything/history/deleteAll", nil)
	req.AddCookie(s.cookie)
	w := s.env.do(req)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true}`, w.Body.String())
}

func (s *HistoryHandlerTestSuite) TestDelete_RequiresSession() {
	w := s.env.do(httptest.NewRequest(http.MethodDelete, "/headlines/history/deleteAll", nil))
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HistoryHandlerTestSuite) TestListHistory_UnknownAccount() {
	s.env.mockHistory.ListHistoryFn = func(ctx context.Context, userID string, category domain.ArticleCategory) ([]domain.SavedArticle, error) {
		return nil, apperrors.ErrNotFound
	}

	// A signed cookie for an account that no longer exists in the store.
	req := httptest.NewRequest(http.MethodGet, "/headlines/history", nil)
	req.AddCookie(s.env.sessionCookie(&domain.User{UserID: "gone", Username: "ghost"}))
	w := s.env.do(req)

	s.Equal(http.StatusNotFound, w.Code)
}
