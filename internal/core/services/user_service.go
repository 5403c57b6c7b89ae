package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/newskeeper/newskeeper_backend/internal/apperrors"
	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portsrepo "github.com/newskeeper/newskeeper_backend/internal/core/ports/repositories"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/utils"
)

// dummyHash is a valid bcrypt hash compared against when the username does
// not exist, so lookup failures and password mismatches take the same time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type userService struct {
	userRepo portsrepo.UserRepository
	hasher   utils.Hasher
}

// NewUserService creates the account store service.
func NewUserService(userRepo portsrepo.UserRepository, hasher utils.Hasher) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, hasher: hasher}
}

func (s *userService) CreateLocalUser(ctx context.Context, username, rawPassword string) (*domain.User, error) {
	if username == "" || rawPassword == "" {
		return nil, fmt.Errorf("username and password are required: %w", apperrors.ErrValidation)
	}

	hash, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) VerifyLocalCredentials(ctx context.Context, username, rawPassword string) (*domain.User, error) {
	user, err := s.userRepo.FindLocalUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}
	if user == nil || !user.IsLocal() {
		// Burn a compare anyway; callers must not be able to probe usernames.
		s.hasher.Compare(dummyHash, rawPassword)
		return nil, apperrors.ErrUnauthorized
	}
	if !s.hasher.Compare(user.PasswordHash, rawPassword) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) FindOrCreateByProvider(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByProviderDetails(ctx, identity.Provider, identity.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up provider user: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       identity.DisplayName,
		AuthProvider:   identity.Provider,
		ProviderUserID: identity.ExternalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	err = s.userRepo.SaveUser(ctx, user)
	if err == nil {
		return &user, nil
	}
	// Two callbacks for the same identity can race on first login; the
	// loser of the insert re-reads the winner's row.
	if existing, findErr := s.userRepo.FindUserByProviderDetails(ctx, identity.Provider, identity.ExternalID); findErr == nil && existing != nil {
		return existing, nil
	}
	return nil, fmt.Errorf("failed to create provider user: %w", err)
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
