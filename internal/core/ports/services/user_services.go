package services

import (
	"context"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
)

// UserSvcFacade is the account store contract used by handlers.
type UserSvcFacade interface {
	// CreateLocalUser registers a local account with a hashed password.
	// Fails with apperrors.ErrDuplicate when the username is taken by another
	// local account, apperrors.ErrValidation on bad input.
	CreateLocalUser(ctx context.Context, username, rawPassword string) (*domain.User, error)

	// VerifyLocalCredentials resolves credentials to an account. Unknown
	// username and wrong password both fail with apperrors.ErrUnauthorized.
	VerifyLocalCredentials(ctx context.Context, username, rawPassword string) (*domain.User, error)

	// FindOrCreateByProvider returns the account for an external identity,
	// creating it on first login. Idempotent per (provider, externalID).
	FindOrCreateByProvider(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error)

	// GetUserByID fails with apperrors.ErrNotFound when the account is absent.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers returns accounts in creation order.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}
