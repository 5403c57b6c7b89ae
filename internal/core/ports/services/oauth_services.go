package services

import (
	"context"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
)

// OAuthProviderSvcFacade is implemented once per external identity provider.
// The core only ever sees the (provider, externalID, displayName) triple.
type OAuthProviderSvcFacade interface {
	// Provider names the identity source this adapter talks to.
	Provider() domain.AuthProvider

	// LoginURL returns the provider authorization URL carrying the CSRF state.
	LoginURL(state string) string

	// FetchIdentity exchanges an authorization code and resolves the external
	// identity behind it. Failures surface as apperrors.ErrUpstream.
	FetchIdentity(ctx context.Context, code string) (*domain.ExternalIdentity, error)
}
