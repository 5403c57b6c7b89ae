package repositories

import (
	"context"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// SaveUser inserts a new account. Returns apperrors.ErrDuplicate when a
	// uniqueness constraint (local username, provider identity) is violated.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID returns nil, nil when no account matches.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindLocalUserByUsername looks up an account by username among local
	// accounts only (those carrying a password hash). Returns nil, nil when
	// absent.
	FindLocalUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByProviderDetails looks up the account created for an external
	// provider identity. Returns nil, nil when absent.
	FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// FindUsers lists accounts in creation order.
	FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}
