package oauthprovider

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/newskeeper/newskeeper_backend/internal/apperrors"
	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/platform/config"
)

const githubProfileURL = "https://api.github.com/user"

// GitHubProvider resolves GitHub identities via the REST API.
type GitHubProvider struct {
	oauth2Config *oauth2.Config
	profileURL   string
}

var _ portssvc.OAuthProviderSvcFacade = (*GitHubProvider)(nil)

func NewGitHubProvider(cfg config.OAuthProviderConfig) *GitHubProvider {
	return &GitHubProvider{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"user:email"},
			Endpoint:     github.Endpoint,
		},
		profileURL: githubProfileURL,
	}
}

func (p *GitHubProvider) Provider() domain.AuthProvider {
	return domain.ProviderGitHub
}

func (p *GitHubProvider) LoginURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

func (p *GitHubProvider) FetchIdentity(ctx context.Context, code string) (*domain.ExternalIdentity, error) {
	token, err := exchangeCode(ctx, p.oauth2Config, code)
	if err != nil {
		return nil, err
	}

	var profile struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Name  string `json:"name"`
	}
	if err := fetchProfile(ctx, p.oauth2Config, token, p.profileURL, &profile); err != nil {
		return nil, err
	}
	if profile.ID == 0 {
		return nil, fmt.Errorf("github profile has no id: %w", apperrors.ErrUpstream)
	}

	// GitHub display names are optional; fall back to the login handle.
	displayName := profile.Name
	if displayName == "" {
		displayName = profile.Login
	}

	return &domain.ExternalIdentity{
		Provider:    domain.ProviderGitHub,
		ExternalID:  strconv.FormatInt(profile.ID, 10),
		DisplayName: displayName,
	}, nil
}
