package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/core/services"
	"github.com/newskeeper/newskeeper_backend/internal/handlers"
	"github.com/newskeeper/newskeeper_backend/internal/platform/config"
	"github.com/newskeeper/newskeeper_backend/internal/utils"
)

const (
	testCookieName  = "nk_session"
	testFrontendURL = "http://localhost:3000"
)

// --- Mock UserSvcFacade ---
type MockUserService struct {
	mock.Mock
	CreateLocalUserFn        func(ctx context.Context, username, rawPassword string) (*domain.User, error)
	VerifyLocalCredentialsFn func(ctx context.Context, username, rawPassword string) (*domain.User, error)
	FindOrCreateByProviderFn func(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error)
	GetUserByIDFn            func(ctx context.Context, userID string) (*domain.User, error)
	ListUsersFn              func(ctx context.Context, limit, offset int) ([]domain.User, error)
}

func (m *MockUserService) CreateLocalUser(ctx context.Context, username, rawPassword string) (*domain.User, error) {
	if m.CreateLocalUserFn != nil {
		return m.CreateLocalUserFn(ctx, username, rawPassword)
	}
	args := m.Called(ctx, username, rawPassword)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) VerifyLocalCredentials(ctx context.Context, username, rawPassword string) (*domain.User, error) {
	if m.VerifyLocalCredentialsFn != nil {
		return m.VerifyLocalCredentialsFn(ctx, username, rawPassword)
	}
	args := m.Called(ctx, username, rawPassword)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) FindOrCreateByProvider(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error) {
	if m.FindOrCreateByProviderFn != nil {
		return m.FindOrCreateByProviderFn(ctx, identity)
	}
	args := m.Called(ctx, identity)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetUserByIDFn != nil {
		return m.GetUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Mock HistorySvcFacade ---
type MockHistoryService struct {
	mock.Mock
	SearchHeadlinesFn  func(ctx context.Context, category string) (*domain.NewsResponse, error)
	SearchEverythingFn func(ctx context.Context, query string) (*domain.NewsResponse, error)
	SaveHeadlinesFn    func(ctx context.Context, userID, category string) (*domain.NewsResponse, error)
	SaveEverythingFn   func(ctx context.Context, userID, query string) (*domain.NewsResponse, error)
	ListHistoryFn      func(ctx context.Context, userID string, category domain.ArticleCategory) ([]domain.SavedArticle, error)
	DeleteOneFn        func(ctx context.Context, userID string, category domain.ArticleCategory, articleID string) error
	DeleteAllFn        func(ctx context.Context, userID string, category domain.ArticleCategory) error
}

func (m *MockHistoryService) SearchHeadlines(ctx context.Context, category string) (*domain.NewsResponse, error) {
	if m.SearchHeadlinesFn != nil {
		return m.SearchHeadlinesFn(ctx, category)
	}
	args := m.Called(ctx, category)
	var resp *domain.NewsResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*domain.NewsResponse)
	}
	return resp, args.Error(1)
}

func (m *MockHistoryService) SearchEverything(ctx context.Context, query string) (*domain.NewsResponse, error) {
	if m.SearchEverythingFn != nil {
		return m.SearchEverythingFn(ctx, query)
	}
	args := m.Called(ctx, query)
	var resp *domain.NewsResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*domain.NewsResponse)
	}
	return resp, args.Error(1)
}

func (m *MockHistoryService) SaveHeadlines(ctx context.Context, userID, category string) (*domain.NewsResponse, error) {
	if m.SaveHeadlinesFn != nil {
		return m.SaveHeadlinesFn(ctx, userID, category)
	}
	args := m.Called(ctx, userID, category)
	var resp *domain.NewsResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*domain.NewsResponse)
	}
	return resp, args.Error(1)
}

func (m *MockHistoryService) SaveEverything(ctx context.Context, userID, query string) (*domain.NewsResponse, error) {
	if m.SaveEverythingFn != nil {
		return m.SaveEverythingFn(ctx, userID, query)
	}
	args := m.Called(ctx, userID, query)
	var resp *domain.NewsResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*domain.NewsResponse)
	}
	return resp, args.Error(1)
}

func (m *MockHistoryService) ListHistory(ctx context.Context, userID string, category domain.ArticleCategory) ([]domain.SavedArticle, error) {
	if m.ListHistoryFn != nil {
		return m.ListHistoryFn(ctx, userID, category)
	}
	args := m.Called(ctx, userID, category)
	var articles []domain.SavedArticle
	if args.Get(0) != nil {
		articles = args.Get(0).([]domain.SavedArticle)
	}
	return articles, args.Error(1)
}

func (m *MockHistoryService) DeleteOne(ctx context.Context, userID string, category domain.ArticleCategory, articleID string) error {
	if m.DeleteOneFn != nil {
		return m.DeleteOneFn(ctx, userID, category, articleID)
	}
	args := m.Called(ctx, userID, category, articleID)
	return args.Error(0)
}

func (m *MockHistoryService) DeleteAll(ctx context.Context, userID string, category domain.ArticleCategory) error {
	if m.DeleteAllFn != nil {
		return m.DeleteAllFn(ctx, userID, category)
	}
	args := m.Called(ctx, userID, category)
	return args.Error(0)
}

// --- Mock OAuthProviderSvcFacade ---
type MockOAuthProvider struct {
	mock.Mock
	ProviderName    domain.AuthProvider
	LoginURLFn      func(state string) string
	FetchIdentityFn func(ctx context.Context, code string) (*domain.ExternalIdentity, error)
}

func (m *MockOAuthProvider) Provider() domain.AuthProvider {
	return m.ProviderName
}

func (m *MockOAuthProvider) LoginURL(state string) string {
	if m.LoginURLFn != nil {
		return m.LoginURLFn(state)
	}
	args := m.Called(state)
	return args.String(0)
}

func (m *MockOAuthProvider) FetchIdentity(ctx context.Context, code string) (*domain.ExternalIdentity, error) {
	if m.FetchIdentityFn != nil {
		return m.FetchIdentityFn(ctx, code)
	}
	args := m.Called(ctx, code)
	var identity *domain.ExternalIdentity
	if args.Get(0) != nil {
		identity = args.Get(0).(*domain.ExternalIdentity)
	}
	return identity, args.Error(1)
}

// --- Router fixture ---

// testEnv wires a full router around mocked services and a real session
// manager, so cookie handling is exercised end to end.
type testEnv struct {
	router      *gin.Engine
	mockUser    *MockUserService
	mockHistory *MockHistoryService
	mockOAuth   *MockOAuthProvider
	sessions    portssvc.SessionSvcFacade
	cfg         *config.Config
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		IsProduction:          true, // no swagger routes in tests
		SessionCookieName:     testCookieName,
		SessionExpiryDuration: time.Hour,
		FrontendBaseURL:       testFrontendURL,
	}
	sessions := services.NewSessionService(utils.NewJWTCodec("handler-test-secret", "newskeeper-backend"), cfg.SessionExpiryDuration)

	env := &testEnv{
		mockUser:    &MockUserService{},
		mockHistory: &MockHistoryService{},
		mockOAuth:   &MockOAuthProvider{ProviderName: domain.ProviderGitHub},
		sessions:    sessions,
		cfg:         cfg,
	}

	container := &portssvc.ServiceContainer{
		User:    env.mockUser,
		Session: sessions,
		History: env.mockHistory,
		OAuthProviders: map[domain.AuthProvider]portssvc.OAuthProviderSvcFacade{
			domain.ProviderGitHub: env.mockOAuth,
		},
	}

	env.router = gin.New()
	handlers.RegisterRoutes(env.router, cfg, container)
	return env
}

// sessionCookie issues a real signed session cookie for the given user.
func (e *testEnv) sessionCookie(user *domain.User) *http.Cookie {
	token, _, err := e.sessions.IssueSession(context.Background(), user)
	if err != nil {
		panic(err)
	}
	return &http.Cookie{Name: testCookieName, Value: token}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// responseCookie returns the named Set-Cookie from a recorded response.
func responseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
