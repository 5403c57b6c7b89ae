package services

import (
	"context"
	"time"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/utils"
)

type sessionService struct {
	codec utils.TokenCodec
	ttl   time.Duration
}

// NewSessionService creates the session manager backed by a token codec.
func NewSessionService(codec utils.TokenCodec, ttl time.Duration) portssvc.SessionSvcFacade {
	return &sessionService{codec: codec, ttl: ttl}
}

func (s *sessionService) IssueSession(ctx context.Context, user *domain.User) (string, time.Time, error) {
	identity := domain.SessionIdentity{UserID: user.UserID, Username: user.Username}
	return s.codec.Sign(identity, s.ttl)
}

// Authenticate never returns an error: anything short of a valid, unexpired
// token is simply anonymous.
func (s *sessionService) Authenticate(ctx context.Context, token string) *domain.SessionIdentity {
	if token == "" {
		return nil
	}
	identity, err := s.codec.Verify(token)
	if err != nil {
		return nil
	}
	return identity
}
