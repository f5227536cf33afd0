package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is an authenticatable account owned by the external identity
// provider. Role carries the provider-side metadata tag when present; an empty
// Role means the metadata fast path has not caught up and resolution must fall
// back to table probing.
type Identity struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          Role      `json:"role,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Session is a provider-issued session handle for office and stakeholder
// accounts. Administrator sessions are not provider entities; see
// AdminSessionCookie.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session is past its expiry.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// RequestSession is the per-request authentication context constructed once by
// the session gate from the inbound cookies and threaded through handlers.
// Exactly one of Admin or Token is meaningful; both empty means the request is
// unauthenticated.
type RequestSession struct {
	// Admin is true when a valid administrator cookie accompanied the request.
	Admin bool
	// Token is the provider session token for office/stakeholder requests.
	Token string
}

// Authenticated reports whether the request carries any trusted session.
func (s RequestSession) Authenticated() bool {
	return s.Admin || s.Token != ""
}
