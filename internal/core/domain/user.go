package domain

// AuthProvider identifies the identity source an account was created through.
type AuthProvider string

const (
	ProviderLocal    AuthProvider = "local"
	ProviderGoogle   AuthProvider = "google"
	ProviderFacebook AuthProvider = "facebook"
	ProviderGitHub   AuthProvider = "github"
)

// User represents a stored account, local or provider-linked.
//
// Local accounts carry a bcrypt PasswordHash and a username that is unique
// among local accounts. OAuth accounts carry (AuthProvider, ProviderUserID)
// instead; their username is the provider display name and may collide with
// other accounts. An account without a password hash can never authenticate
// via local credentials.
type User struct {
	UserID         string       `json:"userID"`
	Username       string       `json:"username"`
	PasswordHash   string       `json:"-"`
	AuthProvider   AuthProvider `json:"authProvider,omitempty"`
	ProviderUserID string       `json:"-"`
	AuditFields
}

// IsLocal reports whether the account can hold local credentials.
func (u *User) IsLocal() bool {
	return u.PasswordHash != ""
}

// ExternalIdentity is what an OAuth provider adapter yields after a
// successful code exchange. The core treats providers as opaque beyond this.
type ExternalIdentity struct {
	Provider    AuthProvider
	ExternalID  string
	DisplayName string
}
