package oauthprovider

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/newskeeper/newskeeper_backend/internal/apperrors"
	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/platform/config"
)

// GoogleProvider resolves Google identities. Rather than calling the
// userinfo endpoint it validates the ID token Google returns alongside the
// access token.
type GoogleProvider struct {
	oauth2Config *oauth2.Config
}

var _ portssvc.OAuthProviderSvcFacade = (*GoogleProvider)(nil)

func NewGoogleProvider(cfg config.OAuthProviderConfig) *GoogleProvider {
	return &GoogleProvider{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (p *GoogleProvider) Provider() domain.AuthProvider {
	return domain.ProviderGoogle
}

func (p *GoogleProvider) LoginURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

func (p *GoogleProvider) FetchIdentity(ctx context.Context, code string) (*domain.ExternalIdentity, error) {
	token, err := exchangeCode(ctx, p.oauth2Config, code)
	if err != nil {
		return nil, err
	}

	idTokenString, ok := token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		return nil, fmt.Errorf("id_token missing from google token response: %w", apperrors.ErrUpstream)
	}

	payload, err := idtoken.Validate(ctx, idTokenString, p.oauth2Config.ClientID)
	if err != nil {
		return nil, fmt.Errorf("google id token validation failed: %w: %w", apperrors.ErrUpstream, err)
	}
	if payload.Subject == "" {
		return nil, fmt.Errorf("google id token has no subject: %w", apperrors.ErrUpstream)
	}

	name, _ := payload.Claims["name"].(string)
	return &domain.ExternalIdentity{
		Provider:    domain.ProviderGoogle,
		ExternalID:  payload.Subject,
		DisplayName: name,
	}, nil
}
