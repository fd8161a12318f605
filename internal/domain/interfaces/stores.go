package interfaces

import domaintypes "turak/internal/domain/types"

// TokenSource is the read side of token storage. The API client consults it
// on every outgoing request; handing a client this capability explicitly
// replaces the original front-end's ambient localStorage read.
type TokenSource interface {
	AccessToken() (string, bool)
}

// TokenStore persists the access/refresh token pair across restarts.
// It is the only durable client state in the system.
type TokenStore interface {
	TokenSource

	SaveTokens(pair domaintypes.TokenPair) error
	RefreshToken() (string, bool)
	Clear() error
}

// Notifier receives the transient, user-facing outcome of service actions.
// It is the toast analog: messages are advisory and may be dropped.
type Notifier interface {
	Success(message string)
	Error(message string)
}
