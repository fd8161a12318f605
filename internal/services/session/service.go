package session

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"turak/internal/api"
	"turak/internal/domain"
)

// ErrNoVerifiedCode is returned when ResetPassword is called before a reset
// code has been verified in this session.
var ErrNoVerifiedCode = errors.New("no verified reset code; request and verify a code first")

// loginResponse is the /login/ payload: the identity plus the token pair to
// persist.
type loginResponse struct {
	User   domain.User      `json:"user"`
	Tokens domain.TokenPair `json:"tokens"`
}

// profilePatch is the partial identity an update response carries. Pointer
// fields distinguish "absent" from "cleared" so the merge preserves
// anything the server did not return.
type profilePatch struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
}

// Service is the authentication state container.
//
// The session lifecycle is Unknown -> Checking -> Authenticated|Anonymous,
// with Authenticated -> Anonymous on logout or auth failure. The
// password-reset sub-flow (Requested -> CodeVerified -> Completed) advances
// independently, holding the email and verified code as its continuation
// state between steps.
type Service struct {
	apiClient domain.APIClient
	tokens    domain.TokenStore
	notify    domain.Notifier

	mu         sync.Mutex
	user       *domain.User
	status     domain.SessionStatus
	checking   bool
	resetEmail string
	resetCode  string
	resetStage domain.ResetStage
}

// New constructs a session service over the given transport, token store
// and notifier.
func New(apiClient domain.APIClient, tokens domain.TokenStore, notify domain.Notifier) *Service {
	return &Service{
		apiClient:  apiClient,
		tokens:     tokens,
		notify:     notify,
		status:     domain.SessionUnknown,
		checking:   true,
		resetStage: domain.ResetNone,
	}
}

// CheckAuth queries the current-identity endpoint. Success sets the
// identity; any failure clears it. The checking flag drops exactly once, on
// first completion, so a UI can render its startup state once.
func (s *Service) CheckAuth(ctx context.Context) error {
	s.mu.Lock()
	s.status = domain.SessionChecking
	s.mu.Unlock()

	var u domain.User
	err := s.apiClient.Get(ctx, "/check/", &u)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.checking = false
	if err != nil {
		s.user = nil
		s.status = domain.SessionAnonymous
		return err
	}
	s.user = &u
	s.status = domain.SessionAuthenticated
	return nil
}

// Signup registers a new account. The caller still has to confirm the email
// and log in; identity is not mutated here.
func (s *Service) Signup(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := s.apiClient.Post(ctx, "/register/", body, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Registration failed"))
		return err
	}
	s.notify.Success("Account created successfully. Please confirm.")
	return nil
}

// Login exchanges credentials for tokens. The pair is persisted to durable
// storage before the identity is set; a failure mutates nothing.
func (s *Service) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := s.apiClient.Post(ctx, "/login/", body, &resp); err != nil {
		s.notify.Error(api.UserMessage(err, "Login failed"))
		return err
	}
	if err := s.tokens.SaveTokens(resp.Tokens); err != nil {
		s.notify.Error("Login failed")
		return err
	}

	s.mu.Lock()
	s.user = &resp.User
	s.status = domain.SessionAuthenticated
	s.mu.Unlock()

	s.notify.Success("Logged in successfully")
	return nil
}

// Logout revokes the refresh token server-side, best effort, then clears
// local tokens and identity unconditionally: a failed revoke must not trap
// the user in a logged-in-looking state.
func (s *Service) Logout(ctx context.Context) error {
	refresh, _ := s.tokens.RefreshToken()
	err := s.apiClient.Post(ctx, "/logout/", map[string]string{"refresh": refresh}, nil)

	if clearErr := s.tokens.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}

	s.mu.Lock()
	s.user = nil
	s.status = domain.SessionAnonymous
	s.mu.Unlock()

	if err != nil {
		s.notify.Error(api.UserMessage(err, "Logout failed"))
		return err
	}
	s.notify.Success("Logged out successfully")
	return nil
}

// RequestPasswordReset starts the reset flow and remembers the email for
// the following steps.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	if err := s.apiClient.Post(ctx, "/forgot-password/", map[string]string{"email": email}, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to request reset"))
		return err
	}

	s.mu.Lock()
	s.resetEmail = email
	s.resetStage = domain.ResetRequested
	s.mu.Unlock()

	s.notify.Success("Reset code sent to your email")
	return nil
}

// VerifyResetCode checks the emailed code and, on success, holds it as the
// continuation for ResetPassword.
func (s *Service) VerifyResetCode(ctx context.Context, code string) error {
	if err := s.apiClient.Post(ctx, "/verify-email/", map[string]string{"reset_code": code}, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Invalid code"))
		return err
	}

	s.mu.Lock()
	s.resetCode = code
	s.resetStage = domain.ResetCodeVerified
	s.mu.Unlock()

	s.notify.Success("Code verified")
	return nil
}

// ResetPassword completes the flow with the previously verified code. It is
// the one action whose error the caller is expected to branch on, so the
// failure propagates as-is alongside the notification.
func (s *Service) ResetPassword(ctx context.Context, newPassword, confirmPassword string) error {
	s.mu.Lock()
	code := s.resetCode
	stage := s.resetStage
	s.mu.Unlock()

	if stage != domain.ResetCodeVerified || code == "" {
		s.notify.Error("Verify your reset code first")
		return ErrNoVerifiedCode
	}

	body := map[string]string{
		"reset_code":       code,
		"new_password":     newPassword,
		"confirm_password": confirmPassword,
	}
	if err := s.apiClient.Post(ctx, "/reset-password/", body, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Password reset failed"))
		return err
	}

	s.mu.Lock()
	s.resetCode = ""
	s.resetEmail = ""
	s.resetStage = domain.ResetCompleted
	s.mu.Unlock()

	s.notify.Success("Password reset")
	return nil
}

// ConfirmEmail submits the signup confirmation code.
func (s *Service) ConfirmEmail(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	if err := s.apiClient.Post(ctx, "/confirm-email/", body, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Confirmation failed"))
		return err
	}
	s.notify.Success("Email confirmed")
	return nil
}

// ResendCode asks for a fresh confirmation code.
func (s *Service) ResendCode(ctx context.Context, email string) error {
	if err := s.apiClient.Post(ctx, "/resend-code/", map[string]string{"email": email}, nil); err != nil {
		s.notify.Error(api.UserMessage(err, "Failed to resend code"))
		return err
	}
	s.notify.Success("Code sent")
	return nil
}

// UpdateProfile sends a multipart update (avatar and/or fields) and merges
// the response into the current identity, keeping anything the response
// omits.
func (s *Service) UpdateProfile(
	ctx context.Context,
	fields map[string]string,
	avatarName string,
	avatar io.Reader,
) error {
	var patch profilePatch
	err := s.apiClient.PutMultipart(ctx, "profile/update/", fields, "avatar", avatarName, avatar, &patch)
	if err != nil {
		s.notify.Error(api.UserMessage(err, "Update failed"))
		return err
	}

	s.mu.Lock()
	if s.user != nil {
		if patch.Username != nil {
			s.user.Username = *patch.Username
		}
		if patch.Email != nil {
			s.user.Email = *patch.Email
		}
		if patch.Avatar != nil {
			s.user.Avatar = *patch.Avatar
		}
	}
	s.mu.Unlock()

	s.notify.Success("Profile updated successfully")
	return nil
}

// User returns the current identity, if authenticated.
func (s *Service) User() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// Status reports where the session sits in its lifecycle.
func (s *Service) Status() domain.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Checking reports whether the initial CheckAuth has yet to complete.
func (s *Service) Checking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checking
}

// ResetStage reports the password-reset sub-flow position.
func (s *Service) ResetStage() domain.ResetStage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetStage
}

// TokenInfo decodes the stored access token's registered claims without
// verifying its signature. Display only; the backend stays the authority.
func (s *Service) TokenInfo() (domain.TokenClaims, bool) {
	raw, ok := s.tokens.AccessToken()
	if !ok {
		return domain.TokenClaims{}, false
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return domain.TokenClaims{}, false
	}
	info := domain.TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, true
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
