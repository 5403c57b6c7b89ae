package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/newskeeper/newskeeper_backend/internal/apperrors"
	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
)

const testStateCookie = "nk_oauth_state"

type OAuthHandlerTestSuite struct {
	suite.Suite
	env *testEnv
}

func (s *OAuthHandlerTestSuite) SetupTest() {
	s.env = newTestEnv()
}

func TestOAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OAuthHandlerTestSuite))
}

func (s *OAuthHandlerTestSuite) TestRedirect_SendsBrowserToProvider() {
	s.env.mockOAuth.LoginURLFn = func(state string) string {
		s.NotEmpty(state, "the consent URL must carry the CSRF state")
		return "https://github.com/login/oauth/authorize?state=" + state
	}

	w := s.env.do(httptest.NewRequest(http.MethodGet, "/auth/github", nil))

	s.Equal(http.StatusFound, w.Code)
	s.Contains(w.Header().Get("Location"), "https://github.com/login/oauth/authorize")

	state := responseCookie(w, testStateCookie)
	s.Require().NotNil(state, "the state must be pinned in a cookie for the callback")
	s.NotEmpty(state.Value)
	s.True(state.HttpOnly)
	s.Contains(w.Header().Get("Location"), state.Value, "URL state and cookie state must match")
}

func (s *OAuthHandlerTestSuite) TestRedirect_UnknownProvider() {
	w := s.env.do(httptest.NewRequest(http.MethodGet, "/auth/twitter", nil))
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *OAuthHandlerTestSuite) TestCallback_Success() {
	s.env.mockOAuth.FetchIdentityFn = func(ctx context.Context, code string) (*domain.ExternalIdentity, error) {
		s.Equal("auth-code-1", code)
		return &domain.ExternalIdentity{Provider: domain.ProviderGitHub, ExternalID: "gh-55", DisplayName: "Robel T"}, nil
	}
	s.env.mockUser.FindOrCreateByProviderFn = func(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error) {
		s.Equal("gh-55", identity.ExternalID)
		return &domain.User{UserID: "u9", Username: "Robel T", AuthProvider: domain.ProviderGitHub}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/github/home?state=state-1&code=auth-code-1", nil)
	req.AddCookie(&http.Cookie{Name: testStateCookie, Value: "state-1"})
	w := s.env.do(req)

	s.Equal(http.StatusFound, w.Code)
	s.Equal(testFrontendURL+"/home", w.Header().Get("Location"))

	session := responseCookie(w, testCookieName)
	s.Require().NotNil(session, "a successful callback must log the account in")
	identity := s.env.sessions.Authenticate(context.Background(), session.Value)
	s.Require().NotNil(identity)
	s.Equal("u9", identity.UserID)

	// The state cookie is single-use.
	state := responseCookie(w, testStateCookie)
	s.Require().NotNil(state)
	s.Empty(state.Value)
}

func (s *OAuthHandlerTestSuite) TestCallback_StateMismatch() {
	s.env.mockOAuth.FetchIdentityFn = func(ctx context.Context, code string) (*domain.ExternalIdentity, error) {
		s.Fail("a forged callback must never exchange the code")
		return nil, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/github/home?state=forged&code=auth-code-1", nil)
	req.AddCookie(&http.Cookie{Name: testStateCookie, Value: "state-1"})
	w := s.env.do(req)

	s.Equal(http.StatusFound, w.Code)
	s.Equal(testFrontendURL+"/signin", w.Header().Get("Location"))
	s.Nil(responseCookie(w, testCookieName))
}

func (s *OAuthHandlerTestSuite) TestCallback_MissingStateCookie() {
	req := httptest.NewRequest(http.MethodGet, "/auth/github/home?state=state-1&code=auth-code-1", nil)
	w := s.env.do(req)

	s.Equal(http.StatusFound, w.Code)
	s.Equal(testFrontendURL+"/signin", w.Header().Get("Location"))
}

func (s *OAuthHandlerTestSuite) TestCallback_ProviderFailure() {
	s.env.mockOAuth.FetchIdentityFn = func(ctx context.Context, code string) (*domain.ExternalIdentity, error) {
		return nil, apperrors.ErrUpstream
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/github/home?state=state-1&code=auth-code-1", nil)
	req.AddCookie(&http.Cookie{Name: testStateCookie, Value: "state-1"})
	w := s.env.do(req)

	s.Equal(http.StatusFound, w.Code)
	s.Equal(testFrontendURL+"/signin", w.Header().Get("Location"))
	s.Nil(responseCookie(w, testCookieName))
}
