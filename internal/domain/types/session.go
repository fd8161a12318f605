package types

import "time"

// User is the authenticated identity as reported by the backend.
type User struct {
	ID          UserID `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar"`
	IsSuperuser bool   `json:"is_superuser"`
	IsAgent     bool   `json:"is_agent"`
	IsBlocked   bool   `json:"is_blocked"`
}

// TokenPair holds the two strings the backend issues on login. They are the
// only client state that survives a restart.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenClaims is the locally decoded view of the access token. It is read
// without signature verification and must never drive an authorization
// decision; the backend remains the authority.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// SessionStatus tracks where the session sits in its lifecycle.
type SessionStatus string

const (
	SessionUnknown       SessionStatus = "unknown"
	SessionChecking      SessionStatus = "checking"
	SessionAuthenticated SessionStatus = "authenticated"
	SessionAnonymous     SessionStatus = "anonymous"
)

// ResetStage tracks the password-reset sub-flow, which advances
// independently of the main session status.
type ResetStage string

const (
	ResetNone         ResetStage = "none"
	ResetRequested    ResetStage = "requested"
	ResetCodeVerified ResetStage = "code_verified"
	ResetCompleted    ResetStage = "completed"
)
