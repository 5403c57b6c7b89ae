package domain

// SessionIdentity is the authenticated identity resolved from a session
// token. A nil identity means the request is anonymous.
type SessionIdentity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}
