package oauthprovider

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"

	"github.com/newskeeper/newskeeper_backend/internal/apperrors"
	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/platform/config"
)

const facebookProfileURL = "https://graph.facebook.com/v19.0/me?fields=id,name"

// FacebookProvider resolves Facebook identities via the Graph API.
type FacebookProvider struct {
	oauth2Config *oauth2.Config
	profileURL   string
}

var _ portssvc.OAuthProviderSvcFacade = (*FacebookProvider)(nil)

func NewFacebookProvider(cfg config.OAuthProviderConfig) *FacebookProvider {
	return &FacebookProvider{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"public_profile"},
			Endpoint:     facebook.Endpoint,
		},
		profileURL: facebookProfileURL,
	}
}

func (p *FacebookProvider) Provider() domain.AuthProvider {
	return domain.ProviderFacebook
}

func (p *FacebookProvider) LoginURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

func (p *FacebookProvider) FetchIdentity(ctx context.Context, code string) (*domain.ExternalIdentity, error) {
	token, err := exchangeCode(ctx, p.oauth2Config, code)
	if err != nil {
		return nil, err
	}

	var profile struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := fetchProfile(ctx, p.oauth2Config, token, p.profileURL, &profile); err != nil {
		return nil, err
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("facebook profile has no id: %w", apperrors.ErrUpstream)
	}

	return &domain.ExternalIdentity{
		Provider:    domain.ProviderFacebook,
		ExternalID:  profile.ID,
		DisplayName: profile.Name,
	}, nil
}
