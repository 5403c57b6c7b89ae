package services

import "github.com/newskeeper/newskeeper_backend/internal/core/domain"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User    UserSvcFacade
	Session SessionSvcFacade
	History HistorySvcFacade

	// OAuthProviders is keyed by the provider path segment (/auth/:provider).
	OAuthProviders map[domain.AuthProvider]OAuthProviderSvcFacade
}
