package services

import (
	"context"
	"time"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
)

// SessionSvcFacade governs which requests count as authenticated. Tokens are
// self-contained and signed, so there is no server-side session table;
// logout is performed at the transport layer by expiring the cookie.
type SessionSvcFacade interface {
	// IssueSession creates a session token for an authenticated account.
	IssueSession(ctx context.Context, user *domain.User) (string, time.Time, error)

	// Authenticate resolves a token to the identity it proves. Absent,
	// malformed or expired tokens resolve to nil — never an error.
	Authenticate(ctx context.Context, token string) *domain.SessionIdentity
}
