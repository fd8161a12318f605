// Package session holds the authenticated identity and drives login,
// signup, logout, email confirmation, the three-step password-reset flow
// and profile updates. Tokens live in the injected durable store; this
// service is the in-memory mirror.
package session
